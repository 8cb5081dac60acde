package services

import (
	"context"
	"time"

	"gympoint/internal/models/db_models"
	"gympoint/pkg/utils"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

func ptr[T any](v T) *T { return &v }

type fakeUserRepo struct {
	users map[uuid.UUID]*db_models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uuid.UUID]*db_models.User{}}
}

func (f *fakeUserRepo) add(user *db_models.User) *db_models.User {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.Client != nil && user.Client.ID == uuid.Nil {
		user.Client.ID = uuid.New()
		user.Client.UserID = user.ID
	}
	if user.Instructor != nil && user.Instructor.ID == uuid.Nil {
		user.Instructor.ID = uuid.New()
		user.Instructor.UserID = user.ID
	}
	if user.Admin != nil && user.Admin.ID == uuid.Nil {
		user.Admin.ID = uuid.New()
		user.Admin.UserID = user.ID
	}
	f.users[user.ID] = user
	return user
}

func (f *fakeUserRepo) Insert(ctx context.Context, user *db_models.User) error {
	f.add(user)
	return nil
}

func (f *fakeUserRepo) Save(ctx context.Context, user *db_models.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) ListAll(ctx context.Context) ([]db_models.User, error) {
	out := make([]db_models.User, 0, len(f.users))
	for _, user := range f.users {
		out = append(out, *user)
	}
	return out, nil
}

func (f *fakeUserRepo) ListWithRole(ctx context.Context, role string) ([]db_models.User, error) {
	var out []db_models.User
	for _, user := range f.users {
		switch role {
		case "clients":
			if user.IsClient() {
				out = append(out, *user)
			}
		case "instructors":
			if user.IsInstructor() {
				out = append(out, *user)
			}
		case "admins":
			if user.IsAdmin() {
				out = append(out, *user)
			}
		}
	}
	return out, nil
}

func (f *fakeUserRepo) AddClientRole(ctx context.Context, userID uuid.UUID) error {
	f.users[userID].Client = &db_models.Client{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		UserID:    userID,
	}
	return nil
}

func (f *fakeUserRepo) AddInstructorRole(ctx context.Context, userID uuid.UUID) error {
	f.users[userID].Instructor = &db_models.Instructor{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		UserID:    userID,
	}
	return nil
}

func (f *fakeUserRepo) AddAdminRole(ctx context.Context, userID uuid.UUID) error {
	f.users[userID].Admin = &db_models.Admin{
		BaseModel: db_models.BaseModel{ID: uuid.New()},
		UserID:    userID,
	}
	return nil
}

func (f *fakeUserRepo) RemoveClientRole(ctx context.Context, userID uuid.UUID) error {
	f.users[userID].Client = nil
	return nil
}

func (f *fakeUserRepo) RemoveInstructorRole(ctx context.Context, userID uuid.UUID) error {
	f.users[userID].Instructor = nil
	return nil
}

func (f *fakeUserRepo) RemoveAdminRole(ctx context.Context, userID uuid.UUID) error {
	f.users[userID].Admin = nil
	return nil
}

type fakeScheduleRepo struct {
	schedules   map[uuid.UUID]*db_models.WeekSchedule
	lastChanges map[string]interface{}
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{schedules: map[uuid.UUID]*db_models.WeekSchedule{}}
}

func (f *fakeScheduleRepo) add(ws *db_models.WeekSchedule) *db_models.WeekSchedule {
	if ws.ID == uuid.Nil {
		ws.ID = uuid.New()
	}
	f.schedules[ws.ID] = ws
	return ws
}

func (f *fakeScheduleRepo) Insert(ctx context.Context, ws *db_models.WeekSchedule) error {
	f.add(ws)
	return nil
}

func (f *fakeScheduleRepo) UpdateFields(ctx context.Context, scheduleID uuid.UUID, changes map[string]interface{}) (bool, error) {
	ws := f.schedules[scheduleID]
	if quota, has := changes["quota"]; has {
		if int64(quota.(int)) < int64(len(ws.Enrollments)) {
			return false, nil
		}
	}
	for column, value := range changes {
		switch column {
		case "days":
			ws.Days = value.(pq.StringArray)
		case "start_date":
			ws.StartDate = value.(time.Time)
		case "instructor_id":
			ws.InstructorID = value.(uuid.UUID)
		case "workout_type_name":
			ws.WorkoutTypeName = value.(string)
		case "quota":
			ws.Quota = value.(int)
		case "price":
			ws.Price = value.(float64)
		}
	}
	f.lastChanges = changes
	return true, nil
}

func (f *fakeScheduleRepo) FindByID(ctx context.Context, id uuid.UUID) (*db_models.WeekSchedule, error) {
	return f.schedules[id], nil
}

func (f *fakeScheduleRepo) ListAll(ctx context.Context) ([]db_models.WeekSchedule, error) {
	out := make([]db_models.WeekSchedule, 0, len(f.schedules))
	for _, ws := range f.schedules {
		out = append(out, *ws)
	}
	return out, nil
}

func (f *fakeScheduleRepo) Delete(ctx context.Context, ws *db_models.WeekSchedule) error {
	delete(f.schedules, ws.ID)
	return nil
}

func (f *fakeScheduleRepo) CountByInstructor(ctx context.Context, instructorID uuid.UUID) (int64, error) {
	var n int64
	for _, ws := range f.schedules {
		if ws.InstructorID == instructorID {
			n++
		}
	}
	return n, nil
}

func (f *fakeScheduleRepo) CountByWorkoutType(ctx context.Context, name string) (int64, error) {
	var n int64
	for _, ws := range f.schedules {
		if ws.WorkoutTypeName == name {
			n++
		}
	}
	return n, nil
}

func (f *fakeScheduleRepo) CountEnrollments(ctx context.Context, scheduleID uuid.UUID) (int64, error) {
	ws := f.schedules[scheduleID]
	if ws == nil {
		return 0, nil
	}
	return int64(len(ws.Enrollments)), nil
}

func (f *fakeScheduleRepo) IsEnrolled(ctx context.Context, scheduleID, clientID uuid.UUID) (bool, error) {
	ws := f.schedules[scheduleID]
	if ws == nil {
		return false, nil
	}
	for _, e := range ws.Enrollments {
		if e.ClientID == clientID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeScheduleRepo) Enroll(ctx context.Context, scheduleID, clientID uuid.UUID) (bool, error) {
	ws := f.schedules[scheduleID]
	if ws.Quota <= 0 {
		return false, nil
	}
	ws.Quota--
	ws.Enrollments = append(ws.Enrollments, db_models.Enrollment{
		BaseModel:      db_models.BaseModel{ID: uuid.New()},
		WeekScheduleID: scheduleID,
		ClientID:       clientID,
	})
	return true, nil
}

func (f *fakeScheduleRepo) RemoveReservation(ctx context.Context, scheduleID, clientID uuid.UUID) (bool, error) {
	ws := f.schedules[scheduleID]
	for i, e := range ws.Enrollments {
		if e.ClientID == clientID {
			ws.Enrollments = append(ws.Enrollments[:i], ws.Enrollments[i+1:]...)
			ws.Quota++
			return true, nil
		}
	}
	return false, nil
}

type fakeWorkoutTypeRepo struct {
	types map[string]*db_models.WorkoutType
}

func newFakeWorkoutTypeRepo() *fakeWorkoutTypeRepo {
	return &fakeWorkoutTypeRepo{types: map[string]*db_models.WorkoutType{}}
}

func (f *fakeWorkoutTypeRepo) Insert(ctx context.Context, wt *db_models.WorkoutType) error {
	f.types[wt.Name] = wt
	return nil
}

func (f *fakeWorkoutTypeRepo) FindByName(ctx context.Context, name string) (*db_models.WorkoutType, error) {
	return f.types[name], nil
}

func (f *fakeWorkoutTypeRepo) FindByEmoji(ctx context.Context, emoji string) (*db_models.WorkoutType, error) {
	for _, wt := range f.types {
		if wt.Emoji == emoji {
			return wt, nil
		}
	}
	return nil, nil
}

func (f *fakeWorkoutTypeRepo) ListAll(ctx context.Context) ([]db_models.WorkoutType, error) {
	out := make([]db_models.WorkoutType, 0, len(f.types))
	for _, wt := range f.types {
		out = append(out, *wt)
	}
	return out, nil
}

func (f *fakeWorkoutTypeRepo) Update(ctx context.Context, originalName string, newName, newEmoji *string) (*db_models.WorkoutType, error) {
	wt := f.types[originalName]
	if newEmoji != nil {
		wt.Emoji = *newEmoji
	}
	if newName != nil {
		delete(f.types, originalName)
		wt.Name = *newName
		f.types[wt.Name] = wt
	}
	return wt, nil
}

func (f *fakeWorkoutTypeRepo) Delete(ctx context.Context, name string) error {
	delete(f.types, name)
	return nil
}

type fakeReceiptRepo struct {
	receipts []*db_models.Receipt
}

func newFakeReceiptRepo() *fakeReceiptRepo { return &fakeReceiptRepo{} }

func (f *fakeReceiptRepo) ListAll(ctx context.Context) ([]db_models.Receipt, error) {
	out := make([]db_models.Receipt, 0, len(f.receipts))
	for _, r := range f.receipts {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeReceiptRepo) ListByClient(ctx context.Context, clientID uuid.UUID) ([]db_models.Receipt, error) {
	var out []db_models.Receipt
	for _, r := range f.receipts {
		if r.ClientID == clientID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReceiptRepo) FindByClientAndSchedule(ctx context.Context, clientID, scheduleID uuid.UUID) ([]db_models.Receipt, error) {
	var out []db_models.Receipt
	for _, r := range f.receipts {
		if r.ClientID == clientID && r.WeekScheduleID == scheduleID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeReceiptRepo) CreateAllUnlessPaid(ctx context.Context, clientID, scheduleID uuid.UUID, months []db_models.PaidMonth, receipts []*db_models.Receipt) (*db_models.PaidMonth, error) {
	for _, existing := range f.receipts {
		if existing.ClientID != clientID || existing.WeekScheduleID != scheduleID {
			continue
		}
		for _, month := range months {
			if existing.Covers(month) {
				conflict := month
				return &conflict, nil
			}
		}
	}
	for _, r := range receipts {
		if r.ID == uuid.Nil {
			r.ID = uuid.New()
		}
		r.CreatedAt = utils.NowUnixSeconds()
		f.receipts = append(f.receipts, r)
	}
	return nil, nil
}

type fakeAttendanceRepo struct {
	records []*db_models.AttendanceRecord
}

func newFakeAttendanceRepo() *fakeAttendanceRepo { return &fakeAttendanceRepo{} }

func (f *fakeAttendanceRepo) Insert(ctx context.Context, rec *db_models.AttendanceRecord) error {
	for _, existing := range f.records {
		if existing.WeekScheduleID == rec.WeekScheduleID && existing.Date.Equal(rec.Date) {
			return gorm.ErrDuplicatedKey
		}
	}
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	f.records = append(f.records, rec)
	return nil
}

func (f *fakeAttendanceRepo) Save(ctx context.Context, rec *db_models.AttendanceRecord) error {
	return nil
}

func (f *fakeAttendanceRepo) FindByScheduleAndDate(ctx context.Context, scheduleID uuid.UUID, date time.Time) (*db_models.AttendanceRecord, error) {
	for _, rec := range f.records {
		if rec.WeekScheduleID == scheduleID && rec.Date.Equal(date) {
			return rec, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) ListAll(ctx context.Context) ([]db_models.AttendanceRecord, error) {
	out := make([]db_models.AttendanceRecord, 0, len(f.records))
	for _, rec := range f.records {
		out = append(out, *rec)
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListBySchedule(ctx context.Context, scheduleID uuid.UUID) ([]db_models.AttendanceRecord, error) {
	var out []db_models.AttendanceRecord
	for _, rec := range f.records {
		if rec.WeekScheduleID == scheduleID {
			out = append(out, *rec)
		}
	}
	return out, nil
}

type fakeTokenRepo struct {
	tokens map[string]*db_models.ForgotPasswordToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: map[string]*db_models.ForgotPasswordToken{}}
}

func (f *fakeTokenRepo) Replace(ctx context.Context, token *db_models.ForgotPasswordToken) error {
	for value, existing := range f.tokens {
		if existing.UserID == token.UserID {
			delete(f.tokens, value)
		}
	}
	f.tokens[token.Token] = token
	return nil
}

func (f *fakeTokenRepo) Consume(ctx context.Context, token string) (*db_models.ForgotPasswordToken, error) {
	existing := f.tokens[token]
	if existing == nil {
		return nil, nil
	}
	delete(f.tokens, token)
	return existing, nil
}

type fakeHealthRecordRepo struct {
	records []*db_models.HealthRecord
}

func newFakeHealthRecordRepo() *fakeHealthRecordRepo { return &fakeHealthRecordRepo{} }

func (f *fakeHealthRecordRepo) Insert(ctx context.Context, rec *db_models.HealthRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	f.records = append(f.records, rec)
	return nil
}

func (f *fakeHealthRecordRepo) ListByClient(ctx context.Context, clientID uuid.UUID) ([]db_models.HealthRecord, error) {
	var out []db_models.HealthRecord
	for i := len(f.records) - 1; i >= 0; i-- {
		if f.records[i].ClientID == clientID {
			out = append(out, *f.records[i])
		}
	}
	return out, nil
}

func (f *fakeHealthRecordRepo) ListAll(ctx context.Context) ([]db_models.HealthRecord, error) {
	out := make([]db_models.HealthRecord, 0, len(f.records))
	for _, rec := range f.records {
		out = append(out, *rec)
	}
	return out, nil
}

type sentMail struct {
	to      string
	subject string
	body    string
}

type fakeMailService struct {
	notifications []sentMail
	resetTokens   map[string]string
}

func newFakeMailService() *fakeMailService {
	return &fakeMailService{resetTokens: map[string]string{}}
}

func (f *fakeMailService) SendNotification(to, subject, body string) error {
	f.notifications = append(f.notifications, sentMail{to: to, subject: subject, body: body})
	return nil
}

func (f *fakeMailService) SendPasswordReset(to, token string) error {
	f.resetTokens[to] = token
	return nil
}
