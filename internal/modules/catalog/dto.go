package catalog

import "time"

type CreateServiceRequest struct {
	Name            string  `json:"name" binding:"required"`
	Price           float64 `json:"price" binding:"required,gte=0"`
	DurationMinutes int     `json:"duration_minutes" binding:"required,gt=0"`
	Active          *bool   `json:"active"`
}

type CreateBarberRequest struct {
	Name   string `json:"name" binding:"required"`
	Active *bool  `json:"active"`
}

type WorkingHoursEntry struct {
	DayOfWeek int    `json:"day_of_week" binding:"min=0,max=6"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	Active    bool   `json:"active"`
}

type SetWorkingHoursRequest struct {
	Hours []WorkingHoursEntry `json:"hours" binding:"required,dive"`
}

type CreateBlockedTimeRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
	Reason    string    `json:"reason"`
}
