package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct{}

func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// Dashboard serves the static HTML shell. It populates itself from the JSON
// endpoints and refreshes every 30 seconds.
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(dashboardHTML))
}

const dashboardHTML = `<!DOCTYPE html>
<html>
<head>
    <title>Attendance System Dashboard</title>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Arial, sans-serif;
            background: #f5f5f5;
            padding: 20px;
        }
        .container { max-width: 1200px; margin: 0 auto; }
        h1 { color: #333; margin-bottom: 30px; }
        .stats {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(200px, 1fr));
            gap: 20px;
            margin-bottom: 30px;
        }
        .stat-card {
            background: white;
            padding: 20px;
            border-radius: 8px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }
        .stat-value { font-size: 32px; font-weight: bold; color: #007bff; }
        .stat-label { color: #666; margin-top: 5px; }
        .section {
            background: white;
            padding: 20px;
            border-radius: 8px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
            margin-bottom: 20px;
        }
        h2 { color: #333; margin-bottom: 15px; font-size: 20px; }
        table {
            width: 100%;
            border-collapse: collapse;
        }
        th, td {
            padding: 12px;
            text-align: left;
            border-bottom: 1px solid #ddd;
        }
        th {
            background: #f8f9fa;
            font-weight: 600;
            color: #333;
        }
        tr:hover { background: #f8f9fa; }
        .status-success { color: #28a745; font-weight: bold; }
        .refresh-btn {
            background: #007bff;
            color: white;
            border: none;
            padding: 10px 20px;
            border-radius: 5px;
            cursor: pointer;
            font-size: 14px;
        }
        .refresh-btn:hover { background: #0056b3; }
        .timestamp { color: #666; font-size: 0.9em; }
    </style>
</head>
<body>
    <div class="container">
        <h1>&#128202; Attendance System Dashboard</h1>

        <div class="stats" id="stats">
            <div class="stat-card">
                <div class="stat-value" id="total-records">-</div>
                <div class="stat-label">Total Records</div>
            </div>
            <div class="stat-card">
                <div class="stat-value" id="today-records">-</div>
                <div class="stat-label">Today's Records</div>
            </div>
            <div class="stat-card">
                <div class="stat-value" id="total-users">-</div>
                <div class="stat-label">Registered Users</div>
            </div>
        </div>

        <div class="section">
            <h2>Recent Attendance <button class="refresh-btn" onclick="loadData()">&#128260; Refresh</button></h2>
            <table>
                <thead>
                    <tr>
                        <th>ID</th>
                        <th>Device ID</th>
                        <th>Name</th>
                        <th>Timestamp</th>
                        <th>Method</th>
                        <th>Device IP</th>
                    </tr>
                </thead>
                <tbody id="attendance-table">
                    <tr><td colspan="6" style="text-align:center">Loading...</td></tr>
                </tbody>
            </table>
        </div>

        <div class="section">
            <h2>Registered Users</h2>
            <table>
                <thead>
                    <tr>
                        <th>Device ID</th>
                        <th>Name</th>
                        <th>Employee ID</th>
                        <th>Department</th>
                    </tr>
                </thead>
                <tbody id="users-table">
                    <tr><td colspan="4" style="text-align:center">Loading...</td></tr>
                </tbody>
            </table>
        </div>
    </div>

    <script>
        async function loadData() {
            try {
                // Load stats
                const statsRes = await fetch('/stats');
                const statsData = await statsRes.json();

                document.getElementById('total-records').textContent = statsData.stats.totalRecords;
                document.getElementById('today-records').textContent = statsData.stats.todayRecords;
                document.getElementById('total-users').textContent = statsData.stats.totalUsers;

                // Load attendance
                const attendanceRes = await fetch('/attendance?limit=50');
                const attendanceData = await attendanceRes.json();

                const attendanceTable = document.getElementById('attendance-table');
                if (attendanceData.records.length === 0) {
                    attendanceTable.innerHTML = '<tr><td colspan="6" style="text-align:center">No records found</td></tr>';
                } else {
                    attendanceTable.innerHTML = attendanceData.records.map(function (r) {
                        return '<tr>' +
                            '<td>' + r.id + '</td>' +
                            '<td>' + r.deviceId + '</td>' +
                            '<td>' + (r.name || 'Unknown') + '</td>' +
                            '<td class="timestamp">' + new Date(r.eventTimestamp).toLocaleString() + '</td>' +
                            '<td><span class="status-success">' + r.loginMethod + '</span></td>' +
                            '<td>' + (r.deviceIp || '-') + '</td>' +
                            '</tr>';
                    }).join('');
                }

                // Load users
                const usersRes = await fetch('/users');
                const usersData = await usersRes.json();

                const usersTable = document.getElementById('users-table');
                if (usersData.users.length === 0) {
                    usersTable.innerHTML = '<tr><td colspan="4" style="text-align:center">No users registered</td></tr>';
                } else {
                    usersTable.innerHTML = usersData.users.map(function (u) {
                        return '<tr>' +
                            '<td>' + u.deviceId + '</td>' +
                            '<td>' + u.name + '</td>' +
                            '<td>' + (u.employeeId || '-') + '</td>' +
                            '<td>' + (u.department || '-') + '</td>' +
                            '</tr>';
                    }).join('');
                }
            } catch (error) {
                console.error('Error loading data:', error);
            }
        }

        // Load data on page load
        loadData();

        // Auto-refresh every 30 seconds
        setInterval(loadData, 30000);
    </script>
</body>
</html>
`
