package contact

type CreateContactRequest struct {
	AthleteID    uint   `json:"athlete_id" binding:"required"`
	FirstNames   string `json:"first_names" binding:"required,notblank,max=150"`
	LastNames    string `json:"last_names" binding:"required,notblank,max=150"`
	Relationship string `json:"relationship" binding:"omitempty,max=50"`
	Phone        string `json:"phone" binding:"required,notblank,max=20"`
	Email        string `json:"email" binding:"omitempty,email,max=150"`
	Address      string `json:"address"`
	IsEmergency  bool   `json:"is_emergency"`
}

type UpdateContactRequest struct {
	FirstNames   *string `json:"first_names" binding:"omitempty,notblank,max=150"`
	LastNames    *string `json:"last_names" binding:"omitempty,notblank,max=150"`
	Relationship *string `json:"relationship" binding:"omitempty,max=50"`
	Phone        *string `json:"phone" binding:"omitempty,notblank,max=20"`
	Email        *string `json:"email" binding:"omitempty,email,max=150"`
	Address      *string `json:"address"`
	IsEmergency  *bool   `json:"is_emergency"`
}
