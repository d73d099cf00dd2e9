package model

// Role is a caller's privilege tier within one organization.
type Role string

const (
	RoleOwner   Role = "owner"
	RoleManager Role = "manager"
	RoleTeacher Role = "teacher"
	RoleStaff   Role = "staff"
	RoleStudent Role = "student"
	RoleParent  Role = "parent"
)

type StudentStatus string

const (
	StudentActive    StudentStatus = "active"
	StudentInactive  StudentStatus = "inactive"
	StudentGraduated StudentStatus = "graduated"
	StudentWithdrawn StudentStatus = "withdrawn"
)

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceExcused AttendanceStatus = "excused"
)

type Organization struct {
	Id        int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string `json:"name" form:"name" gorm:"not null"`
	Type      string `json:"type" form:"type" gorm:"default:academy"`
	OwnerId   int    `json:"ownerId"`
	Settings  string `json:"settings"`
	CreatedAt int64  `json:"createdAt" gorm:"autoCreateTime:milli"`
}

// User is a panel account. Exactly one role per (user, organization) pair.
type User struct {
	Id        int    `json:"id" gorm:"primaryKey;autoIncrement"`
	OrgId     int    `json:"orgId" gorm:"index;not null"`
	Username  string `json:"username" gorm:"uniqueIndex;not null"`
	Password  string `json:"-"`
	Name      string `json:"name" form:"name"`
	Role      Role   `json:"role" gorm:"not null"`
	CreatedAt int64  `json:"createdAt" gorm:"autoCreateTime:milli"`
}

// PagePermission stores the staff/teacher view flags for one dashboard page.
// Owner is never stored; it always passes. A missing row denies access.
type PagePermission struct {
	Id      int    `json:"id" gorm:"primaryKey;autoIncrement"`
	OrgId   int    `json:"orgId" gorm:"uniqueIndex:idx_perm_org_page;not null"`
	Page    string `json:"page" gorm:"uniqueIndex:idx_perm_org_page;not null"`
	Staff   bool   `json:"staff"`
	Teacher bool   `json:"teacher"`
}

type Student struct {
	Id          int           `json:"id" gorm:"primaryKey;autoIncrement"`
	OrgId       int           `json:"-" gorm:"index;not null"`
	Name        string        `json:"name" form:"name" gorm:"not null"`
	Grade       string        `json:"grade" form:"grade"`
	School      string        `json:"school" form:"school"`
	Phone       string        `json:"phone" form:"phone"`
	ParentPhone string        `json:"parentPhone" form:"parentPhone"`
	Status      StudentStatus `json:"status" form:"status" gorm:"default:active"`
	CheckinCode string        `json:"checkinCode" gorm:"uniqueIndex"`
	Notes       string        `json:"notes" form:"notes"`
	CreatedAt   int64         `json:"createdAt" gorm:"autoCreateTime:milli"`
}

type Class struct {
	Id          int    `json:"id" gorm:"primaryKey;autoIncrement"`
	OrgId       int    `json:"-" gorm:"index;not null"`
	Name        string `json:"name" form:"name" gorm:"not null"`
	Subject     string `json:"subject" form:"subject"`
	TeacherName string `json:"teacherName" form:"teacherName"`
	Capacity    int    `json:"capacity" form:"capacity" gorm:"default:20"`
	Room        string `json:"room" form:"room"`
	Status      string `json:"status" form:"status" gorm:"default:active"`
	Notes       string `json:"notes" form:"notes"`
}

type Enrollment struct {
	Id        int `json:"id" gorm:"primaryKey;autoIncrement"`
	OrgId     int `json:"-" gorm:"uniqueIndex:idx_enroll;not null"`
	StudentId int `json:"studentId" form:"studentId" gorm:"uniqueIndex:idx_enroll;not null"`
	ClassId   int `json:"classId" form:"classId" gorm:"uniqueIndex:idx_enroll;not null"`
}

// Attendance is unique per (org, student, date); a second record for the
// same day is a conflict, not an update.
type Attendance struct {
	Id        int              `json:"id" gorm:"primaryKey;autoIncrement"`
	OrgId     int              `json:"-" gorm:"uniqueIndex:idx_att_day;not null"`
	StudentId int              `json:"studentId" form:"studentId" gorm:"uniqueIndex:idx_att_day;not null"`
	ClassId   int              `json:"classId" form:"classId"`
	Date      string           `json:"date" form:"date" gorm:"uniqueIndex:idx_att_day;not null"`
	Status    AttendanceStatus `json:"status" form:"status" gorm:"not null"`
	Notes     string           `json:"notes" form:"notes"`
	CreatedAt int64            `json:"createdAt" gorm:"autoCreateTime:milli"`
}

type Consultation struct {
	Id        int    `json:"id" gorm:"primaryKey;autoIncrement"`
	OrgId     int    `json:"-" gorm:"index;not null"`
	StudentId int    `json:"studentId" form:"studentId"`
	TeacherId int    `json:"teacherId" form:"teacherId"`
	Date      string `json:"date" form:"date" gorm:"not null"`
	Type      string `json:"type" form:"type"`
	Summary   string `json:"summary" form:"summary"`
	Notes     string `json:"notes" form:"notes"`
	Status    string `json:"status" form:"status" gorm:"default:scheduled"`
}

type Exam struct {
	Id         int    `json:"id" gorm:"primaryKey;autoIncrement"`
	OrgId      int    `json:"-" gorm:"index;not null"`
	ClassId    int    `json:"classId" form:"classId"`
	Title      string `json:"title" form:"title" gorm:"not null"`
	Subject    string `json:"subject" form:"subject"`
	ExamDate   string `json:"examDate" form:"examDate"`
	TotalScore int    `json:"totalScore" form:"totalScore" gorm:"default:100"`
}

type ExamResult struct {
	Id        int `json:"id" gorm:"primaryKey;autoIncrement"`
	OrgId     int `json:"-" gorm:"uniqueIndex:idx_exam_result;not null"`
	ExamId    int `json:"examId" form:"examId" gorm:"uniqueIndex:idx_exam_result;not null"`
	StudentId int `json:"studentId" form:"studentId" gorm:"uniqueIndex:idx_exam_result;not null"`
	Score     int `json:"score" form:"score"`
}

type Homework struct {
	Id          int    `json:"id" gorm:"primaryKey;autoIncrement"`
	OrgId       int    `json:"-" gorm:"index;not null"`
	ClassId     int    `json:"classId" form:"classId"`
	TeacherId   int    `json:"teacherId" form:"teacherId"`
	Title       string `json:"title" form:"title" gorm:"not null"`
	Description string `json:"description" form:"description"`
	DueDate     string `json:"dueDate" form:"dueDate"`
	Status      string `json:"status" form:"status" gorm:"default:active"`
}

type Lesson struct {
	Id          int    `json:"id" gorm:"primaryKey;autoIncrement"`
	OrgId       int    `json:"-" gorm:"index;not null"`
	ClassId     int    `json:"classId" form:"classId"`
	TeacherId   int    `json:"teacherId" form:"teacherId"`
	RoomId      int    `json:"roomId" form:"roomId"`
	Title       string `json:"title" form:"title" gorm:"not null"`
	Description string `json:"description" form:"description"`
	LessonDate  string `json:"lessonDate" form:"lessonDate" gorm:"not null"`
	StartTime   string `json:"startTime" form:"startTime"`
	EndTime     string `json:"endTime" form:"endTime"`
	Status      string `json:"status" form:"status" gorm:"default:scheduled"`
}

type Invoice struct {
	Id        int    `json:"id" gorm:"primaryKey;autoIncrement"`
	OrgId     int    `json:"-" gorm:"index;not null"`
	StudentId int    `json:"studentId" form:"studentId" gorm:"not null"`
	Title     string `json:"title" form:"title" gorm:"not null"`
	Amount    int64  `json:"amount" form:"amount" gorm:"not null"`
	DueDate   string `json:"dueDate" form:"dueDate"`
	Status    string `json:"status" form:"status" gorm:"default:pending"`
	PaymentId string `json:"paymentId"`
	PaidAt    int64  `json:"paidAt"`
	CreatedAt int64  `json:"createdAt" gorm:"autoCreateTime:milli"`
}

type Expense struct {
	Id            int    `json:"id" gorm:"primaryKey;autoIncrement"`
	OrgId         int    `json:"-" gorm:"index;not null"`
	Category      string `json:"category" form:"category" gorm:"not null"`
	Amount        int64  `json:"amount" form:"amount" gorm:"not null"`
	Description   string `json:"description" form:"description" gorm:"not null"`
	ExpenseDate   string `json:"expenseDate" form:"expenseDate" gorm:"not null"`
	PaymentMethod string `json:"paymentMethod" form:"paymentMethod"`
	Status        string `json:"status" form:"status" gorm:"default:pending"`
	Notes         string `json:"notes" form:"notes"`
}

type Room struct {
	Id       int    `json:"id" gorm:"primaryKey;autoIncrement"`
	OrgId    int    `json:"-" gorm:"index;not null"`
	Name     string `json:"name" form:"name" gorm:"not null"`
	Capacity int    `json:"capacity" form:"capacity"`
	Floor    int    `json:"floor" form:"floor"`
	Status   string `json:"status" form:"status" gorm:"default:available"`
}

type Seat struct {
	Id        int    `json:"id" gorm:"primaryKey;autoIncrement"`
	OrgId     int    `json:"-" gorm:"uniqueIndex:idx_seat;not null"`
	RoomId    int    `json:"roomId" form:"roomId" gorm:"uniqueIndex:idx_seat;not null"`
	Label     string `json:"label" form:"label" gorm:"uniqueIndex:idx_seat;not null"`
	StudentId int    `json:"studentId" form:"studentId"`
	Status    string `json:"status" form:"status" gorm:"default:free"`
}

type Schedule struct {
	Id        int    `json:"id" gorm:"primaryKey;autoIncrement"`
	OrgId     int    `json:"-" gorm:"index;not null"`
	ClassId   int    `json:"classId" form:"classId"`
	RoomId    int    `json:"roomId" form:"roomId"`
	DayOfWeek int    `json:"dayOfWeek" form:"dayOfWeek" gorm:"not null"`
	StartTime string `json:"startTime" form:"startTime" gorm:"not null"`
	EndTime   string `json:"endTime" form:"endTime" gorm:"not null"`
}

// Widget is one tile of a user's configurable dashboard.
type Widget struct {
	Id        int    `json:"id" gorm:"primaryKey;autoIncrement"`
	OrgId     int    `json:"-" gorm:"uniqueIndex:idx_widget;not null"`
	UserId    int    `json:"-" gorm:"uniqueIndex:idx_widget;not null"`
	Type      string `json:"type" form:"type" gorm:"uniqueIndex:idx_widget;not null"`
	Title     string `json:"title" form:"title"`
	Category  string `json:"category" form:"category"`
	Size      string `json:"size" form:"size" gorm:"default:medium"`
	Enabled   bool   `json:"enabled" form:"enabled"`
	SortOrder int    `json:"sortOrder" form:"sortOrder"`
}

type Setting struct {
	Id    int    `json:"id" gorm:"primaryKey;autoIncrement"`
	Key   string `json:"key" form:"key"`
	Value string `json:"value" form:"value"`
}
