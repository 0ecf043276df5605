package transfer

type CreateTransferRequest struct {
	AthleteID  uint `json:"athlete_id" binding:"required"`
	FromClubID uint `json:"from_club_id" binding:"required"`
	ToClubID   uint `json:"to_club_id" binding:"required"`
	// TransferDate defaults to now.
	TransferDate *string `json:"transfer_date"`
	Reason       string  `json:"reason"`
}

type UpdateTransferRequest struct {
	ToClubID     *uint   `json:"to_club_id"`
	TransferDate *string `json:"transfer_date"`
	Reason       *string `json:"reason"`
}
