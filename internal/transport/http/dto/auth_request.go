package dto

// -------- Admin --------

type AdminSetupTotpRequest struct {
	UID      string `json:"uid" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *AdminSetupTotpRequest) Validate() error { return check(r) }

type AdminLoginRequest struct {
	AdminName string `json:"adminname" validate:"required"`
	Password  string `json:"password" validate:"required"`
	// OTP stays optional here: whether it is demanded depends on the
	// account having a configured secret.
	OTP string `json:"otp"`
}

func (r *AdminLoginRequest) Validate() error { return check(r) }

type AdminCreateRequest struct {
	AdminName string `json:"adminname" validate:"required"`
	UID       string `json:"uid" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
}

func (r *AdminCreateRequest) Validate() error { return check(r) }

// -------- Providers --------

type NgoRegisterRequest struct {
	RegistrationNumber string `json:"registrationNumber" validate:"required"`
	Name               string `json:"name" validate:"required"`
	Email              string `json:"email" validate:"required,email"`
}

func (r *NgoRegisterRequest) Validate() error { return check(r) }

type NgoLoginRequest struct {
	RegistrationNumber string `json:"registrationNumber" validate:"required"`
	OTP                string `json:"otp" validate:"required"`
}

func (r *NgoLoginRequest) Validate() error { return check(r) }

type LawyerRegisterRequest struct {
	Name             string `json:"name" validate:"required"`
	EnrollmentNumber string `json:"enrollmentNumber" validate:"required"`
	Email            string `json:"email" validate:"required,email"`
	ContactNumber    string `json:"contactNumber" validate:"required"`
}

func (r *LawyerRegisterRequest) Validate() error { return check(r) }

type LawyerLoginRequest struct {
	ContactNumber string `json:"contactNumber" validate:"required"`
	OTP           string `json:"otp" validate:"required"`
}

func (r *LawyerLoginRequest) Validate() error { return check(r) }

// -------- Individuals --------

type IndividualRegisterRequest struct {
	Name          string `json:"name" validate:"required"`
	ContactNumber string `json:"contactNumber" validate:"required"`
	Password      string `json:"password" validate:"required"`
}

func (r *IndividualRegisterRequest) Validate() error { return check(r) }

type IndividualLoginRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *IndividualLoginRequest) Validate() error { return check(r) }

// -------- Admin oversight --------

type VerifyRequest struct {
	UserID int64  `json:"userId" validate:"required"`
	Action string `json:"action" validate:"required,oneof=verified rejected"`
}

func (r *VerifyRequest) Validate() error { return check(r) }

// -------- Requests --------

type CreateRequestRequest struct {
	TargetID   int64  `json:"targetId" validate:"required"`
	TargetRole string `json:"targetRole" validate:"required,oneof=ngo lawyer"`
}

func (r *CreateRequestRequest) Validate() error { return check(r) }

type ResolveRequestRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected"`
}

func (r *ResolveRequestRequest) Validate() error { return check(r) }
