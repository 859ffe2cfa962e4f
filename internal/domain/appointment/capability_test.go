package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCapability(t *testing.T) {
	for _, s := range []string{"client", "employee", "administrator", "superuser"} {
		c, ok := ParseCapability(s)
		assert.True(t, ok, s)
		assert.Equal(t, Capability(s), c)
	}

	_, ok := ParseCapability("owner")
	assert.False(t, ok)
}

func TestAllowed(t *testing.T) {
	assert.False(t, Allowed(CapabilityClient, ActionBookForOthers))
	assert.False(t, Allowed(CapabilityClient, ActionResolve))
	assert.False(t, Allowed(CapabilityClient, ActionCancelAny))
	assert.False(t, Allowed(CapabilityClient, ActionDelete), "clients delete through ownership only")
	assert.False(t, Allowed(CapabilityClient, ActionReadAny))

	for _, c := range []Capability{CapabilityEmployee, CapabilityAdministrator, CapabilitySuperuser} {
		assert.True(t, c.IsStaff())
		assert.True(t, Allowed(c, ActionBookForOthers))
		assert.True(t, Allowed(c, ActionResolve))
		assert.True(t, Allowed(c, ActionCancelAny))
		assert.True(t, Allowed(c, ActionDelete))
		assert.True(t, Allowed(c, ActionReadAny))
	}

	assert.False(t, Allowed(CapabilityEmployee, ActionManageShifts))
	assert.True(t, Allowed(CapabilityAdministrator, ActionManageShifts))
}

func TestCaller_CanActOnBusiness(t *testing.T) {
	admin := Caller{ID: 1, BusinessID: 1, Capability: CapabilityAdministrator}
	assert.True(t, admin.CanActOnBusiness(ActionResolve, 1))
	assert.False(t, admin.CanActOnBusiness(ActionResolve, 2))

	unscoped := Caller{ID: 1, Capability: CapabilityAdministrator}
	assert.False(t, unscoped.CanActOnBusiness(ActionResolve, 0), "staff without a business reach nothing")

	root := Caller{ID: 1, Capability: CapabilitySuperuser}
	assert.True(t, root.CanActOnBusiness(ActionResolve, 7))

	client := Caller{ID: 1, BusinessID: 1, Capability: CapabilityClient}
	assert.False(t, client.CanActOnBusiness(ActionCancelAny, 1))
}

func TestCaller_CanAccessEmployee(t *testing.T) {
	own := EmployeeRef{ID: 4, BusinessID: 1}
	colleague := EmployeeRef{ID: 5, BusinessID: 1}
	elsewhere := EmployeeRef{ID: 6, BusinessID: 2}

	self := Caller{ID: 4, BusinessID: 1, Capability: CapabilityEmployee}
	assert.True(t, self.CanAccessEmployee(ActionManageShifts, own))
	assert.False(t, self.CanAccessEmployee(ActionManageShifts, colleague))

	admin := Caller{ID: 1, BusinessID: 1, Capability: CapabilityAdministrator}
	assert.True(t, admin.CanAccessEmployee(ActionReadAgenda, colleague))
	assert.False(t, admin.CanAccessEmployee(ActionReadAgenda, elsewhere))

	client := Caller{ID: 4, Capability: CapabilityClient}
	assert.False(t, client.CanAccessEmployee(ActionReadAgenda, own))
}

func TestCaller_CanAccessAppointment(t *testing.T) {
	alice := EmployeeRef{ID: 4, BusinessID: 1}

	owner := Caller{ID: 100, Capability: CapabilityClient}
	assert.True(t, owner.CanAccessAppointment(ActionCancelAny, 100, alice))
	assert.False(t, owner.CanAccessAppointment(ActionCancelAny, 101, alice))

	// an employee id colliding with the client id grants nothing
	employee := Caller{ID: 100, BusinessID: 2, Capability: CapabilityEmployee}
	assert.False(t, employee.CanAccessAppointment(ActionCancelAny, 100, alice))

	colleague := Caller{ID: 5, BusinessID: 1, Capability: CapabilityEmployee}
	assert.True(t, colleague.CanAccessAppointment(ActionCancelAny, 100, alice))
}
