package model

type SupplierStatus string

const (
	SupplierActive   SupplierStatus = "Active"
	SupplierInactive SupplierStatus = "Inactive"
)

// Supplier status is set by the caller, unlike item stock status it is
// not derived from anything.
type Supplier struct {
	ID      string         `json:"id" validate:"required"`
	Name    string         `json:"name" validate:"required"`
	Contact string         `json:"contact"`
	Email   string         `json:"email" validate:"omitempty,email"`
	Status  SupplierStatus `json:"status" validate:"required,oneof='Active' 'Inactive'"`
}
