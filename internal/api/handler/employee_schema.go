package handler

// Employee create/edit arrive as multipart forms (optional profileImage file
// field), so these bind from form values rather than a JSON body.

type createEmployeeRequest struct {
	FirstName       string `form:"firstName" validate:"required"`
	LastName        string `form:"lastName"  validate:"required"`
	Email           string `form:"email"     validate:"required,email"`
	Role            string `form:"role"`
	Phone           string `form:"phone"`
	MobilePhone     string `form:"mobilePhone"`
	Address         string `form:"address"`
	LinkedinProfile string `form:"linkedinProfile"`
}

type editEmployeeRequest struct {
	ID              string `form:"id"        validate:"required"`
	FirstName       string `form:"firstName" validate:"required"`
	LastName        string `form:"lastName"  validate:"required"`
	Email           string `form:"email"     validate:"required,email"`
	Role            string `form:"role"`
	Phone           string `form:"phone"`
	MobilePhone     string `form:"mobilePhone"`
	Address         string `form:"address"`
	LinkedinProfile string `form:"linkedinProfile"`
}

type employeeInfoRequest struct {
	Username string `json:"username" validate:"required"`
}

type deleteEmployeeRequest struct {
	ID string `json:"id" validate:"required"`
}
