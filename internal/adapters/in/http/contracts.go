package http

// Request and response bodies for the workshop API. Patch bodies use pointer
// fields so an absent key and an explicit empty string stay distinguishable.

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewItemRequest is one rug tag on the intake form.
type NewItemRequest struct {
	ID    string `json:"id"`
	Photo string `json:"photo,omitempty"`
}

// CreateOrderRequest is the intake form. The id is optional; when absent the
// next free ORD-NNN id is assigned.
type CreateOrderRequest struct {
	ID         string           `json:"id,omitempty"`
	ClientName string           `json:"clientName"`
	Phone      string           `json:"phone,omitempty"`
	Email      string           `json:"email,omitempty"`
	Address    string           `json:"address,omitempty"`
	Signature  string           `json:"signature"`
	Receipt    string           `json:"receipt,omitempty"`
	Items      []NewItemRequest `json:"items"`
}

// UpdateContactRequest is the partial contact update body.
type UpdateContactRequest struct {
	ClientName *string `json:"clientName,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Email      *string `json:"email,omitempty"`
	Address    *string `json:"address,omitempty"`
	Receipt    *string `json:"receipt,omitempty"`
}

// UpdateItemRequest is the partial measurement update body for one item.
type UpdateItemRequest struct {
	Length    *string `json:"length,omitempty"`
	Width     *string `json:"width,omitempty"`
	Material  *string `json:"material,omitempty"`
	Condition *string `json:"condition,omitempty"`
	Photo     *string `json:"photo,omitempty"`
}

// RepairEstimateRequest is the repair quote body.
type RepairEstimateRequest struct {
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
}

// ApprovalRequirementRequest toggles the client approval workflow.
type ApprovalRequirementRequest struct {
	RequiresApproval bool `json:"requiresApproval"`
}

// ApprovalDecisionRequest records the client's decision.
type ApprovalDecisionRequest struct {
	Decision string `json:"decision"`
}

// NextOrderIDResponse suggests the id for the next intake form.
type NextOrderIDResponse struct {
	ID string `json:"id"`
}

// RoutePlanRequest selects delivery-ready orders to sequence.
type RoutePlanRequest struct {
	OrderIDs []string `json:"orderIds"`
}

// RoutePlanResponse is the planned delivery sequence.
type RoutePlanResponse struct {
	Sequence []string `json:"sequence"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status string `json:"status"`
}
