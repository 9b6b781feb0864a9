package analytics

type Summary struct {
	TotalPatients        int64   `json:"total_patients"`
	TotalVisits          int64   `json:"total_visits"`
	AppointmentsToday    int64   `json:"appointments_today"`
	UpcomingAppointments int64   `json:"upcoming_appointments"`
	RevenueBilled        float64 `json:"revenue_billed"`
	RevenueCollected     float64 `json:"revenue_collected"`
	RevenueOutstanding   float64 `json:"revenue_outstanding"`
}

type MonthlyCount struct {
	Month int   `json:"month"`
	Count int64 `json:"count"`
}

type LabelCount struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

type MonthlyRevenue struct {
	Month       int     `json:"month"`
	Billed      float64 `json:"billed"`
	Collected   float64 `json:"collected"`
	Outstanding float64 `json:"outstanding"`
}

type PatientStats struct {
	Year     int            `json:"year"`
	Monthly  []MonthlyCount `json:"monthly"`
	ByGender []LabelCount   `json:"by_gender"`
	Total    int64          `json:"total"`
}

type VisitStats struct {
	Year    int            `json:"year"`
	Monthly []MonthlyCount `json:"monthly"`
	Total   int64          `json:"total"`
}

type AppointmentStats struct {
	Year     int            `json:"year"`
	Monthly  []MonthlyCount `json:"monthly"`
	ByStatus []LabelCount   `json:"by_status"`
	Total    int64          `json:"total"`
}

type RevenueStats struct {
	Year        int              `json:"year"`
	Monthly     []MonthlyRevenue `json:"monthly"`
	Billed      float64          `json:"billed"`
	Collected   float64          `json:"collected"`
	Outstanding float64          `json:"outstanding"`
}
