package constants

// Role permissions carried in JWT claims. One full-permit string per
// position, plus the client-facing customer permission.
const (
	PermDirectorFull      = "logitrans.director.full-permit"
	PermAdministratorFull = "logitrans.administrator.full-permit"
	PermOperatorFull      = "logitrans.operator.full-permit"
	PermWarehouseFull     = "logitrans.warehouse.full-permit"
	PermManagerFull       = "logitrans.manager.full-permit"
	PermClientFull        = "logitrans.client.full-permit"

	// Special permissions
	PermAny = "any"
)

// Permission groups for convenience
var (
	StaffPermissions = []string{
		PermDirectorFull,
		PermAdministratorFull,
		PermOperatorFull,
		PermWarehouseFull,
		PermManagerFull,
	}

	ReportingPermissions = []string{
		PermDirectorFull,
		PermManagerFull,
	}
)
