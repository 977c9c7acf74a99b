package domain

// LeadStatus is the position of a lead in the sales funnel.
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusLost      LeadStatus = "lost"
)

func (s LeadStatus) String() string { return string(s) }

func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusLost:
		return true
	}
	return false
}

// IsTerminal reports whether no further funnel movement is expected.
func (s LeadStatus) IsTerminal() bool {
	return s == LeadStatusQualified || s == LeadStatusLost
}

// AllLeadStatuses lists statuses in funnel order.
var AllLeadStatuses = []LeadStatus{
	LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusLost,
}

// LeadSource is the channel a lead came from.
type LeadSource string

const (
	LeadSourceWebsite     LeadSource = "Website"
	LeadSourceReferral    LeadSource = "Referral"
	LeadSourceSocialMedia LeadSource = "Social Media"
	LeadSourceColdCall    LeadSource = "Cold Call"
	LeadSourceOther       LeadSource = "Other"
)

func (s LeadSource) String() string { return string(s) }

func (s LeadSource) IsValid() bool {
	switch s {
	case LeadSourceWebsite, LeadSourceReferral, LeadSourceSocialMedia, LeadSourceColdCall, LeadSourceOther:
		return true
	}
	return false
}

// CustomerStatus represents the relationship state with a customer.
type CustomerStatus string

const (
	CustomerStatusActive   CustomerStatus = "active"
	CustomerStatusInactive CustomerStatus = "inactive"
	CustomerStatusProspect CustomerStatus = "prospect"
)

func (s CustomerStatus) String() string { return string(s) }

func (s CustomerStatus) IsValid() bool {
	switch s {
	case CustomerStatusActive, CustomerStatusInactive, CustomerStatusProspect:
		return true
	}
	return false
}

// AppointmentStatus represents the state of a scheduled appointment.
type AppointmentStatus string

const (
	AppointmentStatusScheduled   AppointmentStatus = "scheduled"
	AppointmentStatusCompleted   AppointmentStatus = "completed"
	AppointmentStatusCancelled   AppointmentStatus = "cancelled"
	AppointmentStatusRescheduled AppointmentStatus = "rescheduled"
)

func (s AppointmentStatus) String() string { return string(s) }

func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusCompleted, AppointmentStatusCancelled, AppointmentStatusRescheduled:
		return true
	}
	return false
}

// AssetCategory classifies company assets.
type AssetCategory string

const (
	AssetCategoryEquipment AssetCategory = "equipment"
	AssetCategoryVehicle   AssetCategory = "vehicle"
	AssetCategoryTool      AssetCategory = "tool"
	AssetCategoryMaterial  AssetCategory = "material"
	AssetCategoryOther     AssetCategory = "other"
)

func (c AssetCategory) String() string { return string(c) }

func (c AssetCategory) IsValid() bool {
	switch c {
	case AssetCategoryEquipment, AssetCategoryVehicle, AssetCategoryTool, AssetCategoryMaterial, AssetCategoryOther:
		return true
	}
	return false
}

// AssetStatus represents the availability of an asset.
type AssetStatus string

const (
	AssetStatusAvailable   AssetStatus = "available"
	AssetStatusInUse       AssetStatus = "in_use"
	AssetStatusMaintenance AssetStatus = "maintenance"
	AssetStatusRetired     AssetStatus = "retired"
)

func (s AssetStatus) String() string { return string(s) }

func (s AssetStatus) IsValid() bool {
	switch s {
	case AssetStatusAvailable, AssetStatusInUse, AssetStatusMaintenance, AssetStatusRetired:
		return true
	}
	return false
}

// EmployeeStatus represents employment state.
type EmployeeStatus string

const (
	EmployeeStatusActive     EmployeeStatus = "active"
	EmployeeStatusOnLeave    EmployeeStatus = "on_leave"
	EmployeeStatusTerminated EmployeeStatus = "terminated"
)

func (s EmployeeStatus) String() string { return string(s) }

func (s EmployeeStatus) IsValid() bool {
	switch s {
	case EmployeeStatusActive, EmployeeStatusOnLeave, EmployeeStatusTerminated:
		return true
	}
	return false
}

// Department groups employees by function.
type Department string

const (
	DepartmentManagement     Department = "management"
	DepartmentSales          Department = "sales"
	DepartmentOperations     Department = "operations"
	DepartmentEngineering    Department = "engineering"
	DepartmentAdministration Department = "administration"
	DepartmentField          Department = "field"
)

func (d Department) String() string { return string(d) }

func (d Department) IsValid() bool {
	switch d {
	case DepartmentManagement, DepartmentSales, DepartmentOperations,
		DepartmentEngineering, DepartmentAdministration, DepartmentField:
		return true
	}
	return false
}

// DocumentCategory classifies uploaded documents.
type DocumentCategory string

const (
	DocumentCategoryContract  DocumentCategory = "contract"
	DocumentCategoryInvoice   DocumentCategory = "invoice"
	DocumentCategoryPermit    DocumentCategory = "permit"
	DocumentCategoryBlueprint DocumentCategory = "blueprint"
	DocumentCategoryReport    DocumentCategory = "report"
	DocumentCategoryOther     DocumentCategory = "other"
)

func (c DocumentCategory) String() string { return string(c) }

func (c DocumentCategory) IsValid() bool {
	switch c {
	case DocumentCategoryContract, DocumentCategoryInvoice, DocumentCategoryPermit,
		DocumentCategoryBlueprint, DocumentCategoryReport, DocumentCategoryOther:
		return true
	}
	return false
}

// UserRole controls access to administrative operations.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	return r == UserRoleUser || r == UserRoleAdmin
}

// IsAdmin reports whether the role has admin privileges.
func (r UserRole) IsAdmin() bool { return r == UserRoleAdmin }

// EntityType identifies the kind of domain entity (used in audit logs).
type EntityType string

const (
	EntityTypeLead        EntityType = "LEAD"
	EntityTypeCustomer    EntityType = "CUSTOMER"
	EntityTypeAppointment EntityType = "APPOINTMENT"
	EntityTypeAsset       EntityType = "ASSET"
	EntityTypeEmployee    EntityType = "EMPLOYEE"
	EntityTypeDocument    EntityType = "DOCUMENT"
	EntityTypeUser        EntityType = "USER"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeLead, EntityTypeCustomer, EntityTypeAppointment, EntityTypeAsset,
		EntityTypeEmployee, EntityTypeDocument, EntityTypeUser:
		return true
	}
	return false
}

// AuditAction represents the kind of mutation recorded in the audit log.
type AuditAction string

const (
	AuditActionCreate       AuditAction = "CREATE"
	AuditActionUpdate       AuditAction = "UPDATE"
	AuditActionDelete       AuditAction = "DELETE"
	AuditActionStatusChange AuditAction = "STATUS_CHANGE"
	AuditActionConvert      AuditAction = "CONVERT"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionCreate, AuditActionUpdate, AuditActionDelete, AuditActionStatusChange, AuditActionConvert:
		return true
	}
	return false
}
