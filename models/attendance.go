package models

type RecordAttendanceRequest struct {
	DeviceID       int    `json:"deviceId" binding:"required,min=1,max=20"`
	EventTimestamp string `json:"eventTimestamp" binding:"required"`
	LoginMethod    string `json:"loginMethod" binding:"required"`
}

type AttendanceRecord struct {
	ID             int     `json:"id"`
	DeviceID       int     `json:"deviceId"`
	EventTimestamp string  `json:"eventTimestamp"`
	LoginMethod    string  `json:"loginMethod"`
	DeviceIP       string  `json:"deviceIp"`
	ReceivedAt     string  `json:"receivedAt"`
	Name           *string `json:"name"`
	EmployeeID     *string `json:"employeeId"`
	Department     *string `json:"department"`
}
