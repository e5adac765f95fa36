package user

type Permission string

const (
	// Self service
	PermissionAttendancePunch   Permission = "attendance.punch"
	PermissionAttendanceViewOwn Permission = "attendance.view_own"
	PermissionAttendanceEditOwn Permission = "attendance.edit_own"

	// Staff
	PermissionAttendanceViewAll Permission = "attendance.view_all"
	PermissionAttendanceEditAll Permission = "attendance.edit_all"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleStudent: {
		PermissionAttendancePunch,
		PermissionAttendanceViewOwn,
		PermissionAttendanceEditOwn,
	},
	RoleTrainer: {
		PermissionAttendanceViewAll,
		PermissionAttendanceEditAll,
	},
	RoleAdmin: {
		PermissionAttendanceViewAll,
		PermissionAttendanceEditAll,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
