package models

// AdminStats агрегированная статистика платформы для панели администратора.
type AdminStats struct {
	TotalUsers     int    `json:"totalUsers"`
	AdminUsers     int    `json:"adminUsers"`
	RegularUsers   int    `json:"regularUsers"`
	TotalSwaps     int    `json:"totalSwaps"`
	PendingSwaps   int    `json:"pendingSwaps"`
	CompletedSwaps int    `json:"completedSwaps"`
	Users          []User `json:"users"`       // Все пользователи без учетных данных
	RecentSwaps    []Swap `json:"recentSwaps"` // Последние 10 обменов
}
