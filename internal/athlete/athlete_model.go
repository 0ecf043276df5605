package athlete

// CreateAthleteRequest binds from JSON or multipart form data. Files travel
// as the multipart parts named in FileFields.
type CreateAthleteRequest struct {
	FirstName      string `json:"first_name" form:"first_name" binding:"required,notblank,max=100"`
	MiddleName     string `json:"middle_name" form:"middle_name" binding:"omitempty,max=100"`
	LastName       string `json:"last_name" form:"last_name" binding:"required,notblank,max=100"`
	SecondLastName string `json:"second_last_name" form:"second_last_name" binding:"omitempty,max=100"`
	BirthDate      string `json:"birth_date" form:"birth_date" binding:"required"`
	Gender         string `json:"gender" form:"gender" binding:"required,oneof=male female"`
	DocumentNumber string `json:"document_number" form:"document_number" binding:"required,notblank,max=20"`
	DocumentType   string `json:"document_type" form:"document_type" binding:"required,oneof=national_id identity_card passport"`
	BloodType      string `json:"blood_type" form:"blood_type" binding:"required,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Phone          string `json:"phone" form:"phone" binding:"omitempty,max=20"`
	Email          string `json:"email" form:"email" binding:"omitempty,email,max=150"`
	Address        string `json:"address" form:"address"`
	Position       string `json:"position" form:"position" binding:"omitempty,oneof=setter middle_blocker outside_hitter libero opposite"`
	JerseyNumber   *int   `json:"jersey_number" form:"jersey_number" binding:"omitempty,gte=0,lte=99"`
}

type UpdateAthleteRequest struct {
	FirstName      *string `json:"first_name" form:"first_name" binding:"omitempty,notblank,max=100"`
	MiddleName     *string `json:"middle_name" form:"middle_name" binding:"omitempty,max=100"`
	LastName       *string `json:"last_name" form:"last_name" binding:"omitempty,notblank,max=100"`
	SecondLastName *string `json:"second_last_name" form:"second_last_name" binding:"omitempty,max=100"`
	BirthDate      *string `json:"birth_date" form:"birth_date"`
	Gender         *string `json:"gender" form:"gender" binding:"omitempty,oneof=male female"`
	DocumentNumber *string `json:"document_number" form:"document_number" binding:"omitempty,notblank,max=20"`
	DocumentType   *string `json:"document_type" form:"document_type" binding:"omitempty,oneof=national_id identity_card passport"`
	BloodType      *string `json:"blood_type" form:"blood_type" binding:"omitempty,oneof=A+ A- B+ B- AB+ AB- O+ O-"`
	Phone          *string `json:"phone" form:"phone" binding:"omitempty,max=20"`
	Email          *string `json:"email" form:"email" binding:"omitempty,email,max=150"`
	Address        *string `json:"address" form:"address"`
	Status         *string `json:"status" form:"status" binding:"omitempty,oneof=active inactive"`
	Position       *string `json:"position" form:"position" binding:"omitempty,oneof=setter middle_blocker outside_hitter libero opposite"`
	JerseyNumber   *int    `json:"jersey_number" form:"jersey_number" binding:"omitempty,gte=0,lte=99"`
}

// Filter narrows the athlete listing. An empty Status means active.
type Filter struct {
	ClubID *uint
	Gender string
	Status string
}
