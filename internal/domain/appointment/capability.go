package appointment

// Capability is the closed set of caller roles.
type Capability string

const (
	CapabilityClient        Capability = "client"
	CapabilityEmployee      Capability = "employee"
	CapabilityAdministrator Capability = "administrator"
	CapabilitySuperuser     Capability = "superuser"
)

func ParseCapability(s string) (Capability, bool) {
	switch c := Capability(s); c {
	case CapabilityClient, CapabilityEmployee, CapabilityAdministrator, CapabilitySuperuser:
		return c, true
	}
	return "", false
}

func (c Capability) IsStaff() bool {
	return c == CapabilityEmployee || c == CapabilityAdministrator || c == CapabilitySuperuser
}

type Caller struct {
	ID         uint
	BusinessID uint
	Capability Capability
}

type Action string

const (
	ActionBookForOthers Action = "book_for_others"
	ActionResolve       Action = "resolve"
	ActionCancelAny     Action = "cancel_any"
	ActionDelete        Action = "delete"
	ActionManageShifts  Action = "manage_shifts"
	ActionReadAgenda    Action = "read_agenda"
	ActionReadAny       Action = "read_any"
)

var permissions = map[Action]map[Capability]bool{
	ActionBookForOthers: {CapabilityEmployee: true, CapabilityAdministrator: true, CapabilitySuperuser: true},
	ActionResolve:       {CapabilityEmployee: true, CapabilityAdministrator: true, CapabilitySuperuser: true},
	ActionCancelAny:     {CapabilityEmployee: true, CapabilityAdministrator: true, CapabilitySuperuser: true},
	// clients delete their own bookings, see OwnsAppointment
	ActionDelete:  {CapabilityEmployee: true, CapabilityAdministrator: true, CapabilitySuperuser: true},
	ActionReadAny: {CapabilityEmployee: true, CapabilityAdministrator: true, CapabilitySuperuser: true},
	// employees may still manage their own shifts and agenda, see OwnsEmployee
	ActionManageShifts: {CapabilityAdministrator: true, CapabilitySuperuser: true},
	ActionReadAgenda:   {CapabilityAdministrator: true, CapabilitySuperuser: true},
}

func Allowed(c Capability, a Action) bool {
	return permissions[a][c]
}

// OwnsEmployee reports whether the caller is the employee itself.
func (c Caller) OwnsEmployee(employeeID uint) bool {
	return c.Capability == CapabilityEmployee && c.ID == employeeID
}

// OwnsAppointment reports whether the caller is the client who booked it.
func (c Caller) OwnsAppointment(userID uint) bool {
	return c.Capability == CapabilityClient && c.ID == userID
}

// CanActOnBusiness reports whether the caller holds the action over records
// of the given business. Superusers span every business; other staff only
// reach the business carried in their token.
func (c Caller) CanActOnBusiness(a Action, businessID uint) bool {
	if !Allowed(c.Capability, a) {
		return false
	}
	if c.Capability == CapabilitySuperuser {
		return true
	}
	return c.BusinessID != 0 && c.BusinessID == businessID
}

func (c Caller) CanAccessEmployee(a Action, employee EmployeeRef) bool {
	if c.OwnsEmployee(employee.ID) && (c.BusinessID == 0 || c.BusinessID == employee.BusinessID) {
		return true
	}
	return c.CanActOnBusiness(a, employee.BusinessID)
}

// CanAccessAppointment covers the client who booked it and staff of the
// business the appointment's employee works for.
func (c Caller) CanAccessAppointment(a Action, userID uint, employee EmployeeRef) bool {
	return c.OwnsAppointment(userID) || c.CanAccessEmployee(a, employee)
}

// EmployeeRef is the part of an employee record authorization looks at.
type EmployeeRef struct {
	ID         uint
	BusinessID uint
}
