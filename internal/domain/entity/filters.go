package entity

// DoctorFilter is a domain-level filter for the public doctor directory.
// Used by repository layer to avoid coupling with delivery DTOs.
type DoctorFilter struct {
	Specialization string // ILIKE match
	Search         string // matches first/last name or specialization (ILIKE)
}

// UserFilter filters the admin user listing.
type UserFilter struct {
	Search string // matches first/last name or email (ILIKE)
	Role   string // exact role, empty or "all" means any
}
