package servicetype

// ServiceType is a catalog entry for the kinds of repair work offered.
// Service rows record the type as free text; the catalog is advisory, not a
// foreign-key target.
type ServiceType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
