package club

// CreateClubRequest binds from JSON or multipart form data; the optional
// logo travels as the multipart file "logo".
type CreateClubRequest struct {
	Name          string `json:"name" form:"name" binding:"required,notblank,max=150"`
	FoundedAt     string `json:"founded_at" form:"founded_at" binding:"required"`
	Branch        string `json:"branch" form:"branch" binding:"required,oneof=u15 u17 u19 senior youth junior"`
	Category      string `json:"category" form:"category" binding:"omitempty,max=50"`
	Address       string `json:"address" form:"address" binding:"required,notblank"`
	Phone         string `json:"phone" form:"phone" binding:"required,notblank,max=20"`
	Email         string `json:"email" form:"email" binding:"required,email,max=150"`
	ResponsibleID uint   `json:"responsible_id" form:"responsible_id" binding:"required"`
}

type UpdateClubRequest struct {
	Name          *string `json:"name" form:"name" binding:"omitempty,notblank,max=150"`
	FoundedAt     *string `json:"founded_at" form:"founded_at"`
	Branch        *string `json:"branch" form:"branch" binding:"omitempty,oneof=u15 u17 u19 senior youth junior"`
	Category      *string `json:"category" form:"category" binding:"omitempty,max=50"`
	Address       *string `json:"address" form:"address" binding:"omitempty,notblank"`
	Phone         *string `json:"phone" form:"phone" binding:"omitempty,notblank,max=20"`
	Email         *string `json:"email" form:"email" binding:"omitempty,email,max=150"`
	ResponsibleID *uint   `json:"responsible_id" form:"responsible_id"`
}

type AssignAthleteRequest struct {
	AthleteID uint `json:"athlete_id" binding:"required"`
	// JoinedAt defaults to now.
	JoinedAt *string `json:"joined_at"`
}

// Filter narrows the club listing.
type Filter struct {
	ResponsibleID   *uint
	Name            string
	IncludeInactive bool
}
