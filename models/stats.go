package models

type Stats struct {
	TotalRecords     int                `json:"totalRecords"`
	TodayRecords     int                `json:"todayRecords"`
	TotalUsers       int                `json:"totalUsers"`
	RecentAttendance []AttendanceRecord `json:"recentAttendance"`
}
