package request

type RegisterRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=255"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=6"`
	DOB            string `json:"dob,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Gender         string `json:"gender,omitempty" validate:"omitempty,oneof=Male Female Other"`
	PreferredGenre string `json:"preferred_genre,omitempty" validate:"omitempty,max=255"`
}

type VerifyOTPRequest struct {
	UserID string `json:"userId" validate:"required,uuid"`
	OTP    string `json:"otp" validate:"required,len=6,numeric"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
