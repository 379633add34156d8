package models

type UpsertUserRequest struct {
	DeviceID   int     `json:"deviceId" binding:"required,min=1,max=20"`
	Name       string  `json:"name" binding:"required"`
	EmployeeID *string `json:"employeeId"`
	Department *string `json:"department"`
}

type UserRecord struct {
	DeviceID   int     `json:"deviceId"`
	Name       string  `json:"name"`
	EmployeeID *string `json:"employeeId"`
	Department *string `json:"department"`
	CreatedAt  string  `json:"createdAt"`
}
