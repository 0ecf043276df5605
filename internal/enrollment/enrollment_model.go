package enrollment

type CreateEnrollmentRequest struct {
	EventID uint `json:"event_id" binding:"required"`
	ClubID  uint `json:"club_id" binding:"required"`
}
