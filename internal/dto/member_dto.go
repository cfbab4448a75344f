package dto

type CreateMemberRequest struct {
	PhoneID      string  `json:"phone_id" binding:"required"`
	MemberNumber string  `json:"member_number" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Industry     string  `json:"industry" binding:"required"`
	Master       *string `json:"master"`
	JoinDate     string  `json:"join_date" binding:"required"`
	Status       string  `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
}

type UpdateMemberRequest struct {
	PhoneID      *string `json:"phone_id"`
	MemberNumber *string `json:"member_number"`
	Name         *string `json:"name"`
	Industry     *string `json:"industry"`
	Master       *string `json:"master"`
	JoinDate     *string `json:"join_date"`
	Status       *string `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
}

// MemberImportResult summarizes a roster upload. Row-level failures are
// itemized here (unlike activity uploads, which only report a count).
type MemberImportResult struct {
	Message string   `json:"message"`
	Success int      `json:"success"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors"`
}

type MemberSearchFilter struct {
	Query    string `form:"q"`
	Industry string `form:"industry"`
	Status   string `form:"status"`
	Limit    int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
}
