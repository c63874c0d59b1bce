package dto

// StatsOverviewResponse represents the admin dashboard counters
type StatsOverviewResponse struct {
	TotalUsers         int64   `json:"total_users"`
	TotalEvents        int64   `json:"total_events"`
	TotalTeams         int64   `json:"total_teams"`
	TotalRegistrations int64   `json:"total_registrations"`
	TotalRevenue       float64 `json:"total_revenue"`
}
