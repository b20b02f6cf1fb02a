package models

// DashboardStats summarizes the issues visible to a staff member
type DashboardStats struct {
	Total      int `json:"total"`
	Resolved   int `json:"resolved"`
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Unresolved int `json:"unresolved"`
	Emergency  int `json:"emergency"`
}
