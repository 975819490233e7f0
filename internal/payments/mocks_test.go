package payments

import (
	"context"
	"errors"

	"github.com/jahangir2k04/fitflex-client/internal/models"
	"github.com/jahangir2k04/fitflex-client/internal/repository"
)

var errMockStore = errors.New("store unavailable")

type mockPayments struct {
	InsertFunc               func(ctx context.Context, payment models.Payment) (models.Payment, error)
	FindByStudentFunc        func(ctx context.Context, email string) ([]models.Payment, error)
	FindByIdempotencyKeyFunc func(ctx context.Context, key string) (models.Payment, error)
}

func (m *mockPayments) Insert(ctx context.Context, payment models.Payment) (models.Payment, error) {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, payment)
	}
	return payment, nil
}

func (m *mockPayments) FindByStudent(ctx context.Context, email string) ([]models.Payment, error) {
	if m.FindByStudentFunc != nil {
		return m.FindByStudentFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockPayments) FindByIdempotencyKey(ctx context.Context, key string) (models.Payment, error) {
	if m.FindByIdempotencyKeyFunc != nil {
		return m.FindByIdempotencyKeyFunc(ctx, key)
	}
	return models.Payment{}, repository.ErrNotFound
}

type mockSelections struct {
	FindByStudentFunc           func(ctx context.Context, email string) ([]models.SelectedClass, error)
	ExistsFunc                  func(ctx context.Context, studentEmail, classID string) (bool, error)
	InsertFunc                  func(ctx context.Context, sel models.SelectedClass) (models.SelectedClass, error)
	DeleteByIDFunc              func(ctx context.Context, id string) error
	DeleteByStudentAndClassFunc func(ctx context.Context, studentEmail, classID string) (int64, error)
}

func (m *mockSelections) FindByStudent(ctx context.Context, email string) ([]models.SelectedClass, error) {
	if m.FindByStudentFunc != nil {
		return m.FindByStudentFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockSelections) Exists(ctx context.Context, studentEmail, classID string) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, studentEmail, classID)
	}
	return false, nil
}

func (m *mockSelections) Insert(ctx context.Context, sel models.SelectedClass) (models.SelectedClass, error) {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, sel)
	}
	return sel, nil
}

func (m *mockSelections) DeleteByID(ctx context.Context, id string) error {
	if m.DeleteByIDFunc != nil {
		return m.DeleteByIDFunc(ctx, id)
	}
	return nil
}

func (m *mockSelections) DeleteByStudentAndClass(ctx context.Context, studentEmail, classID string) (int64, error) {
	if m.DeleteByStudentAndClassFunc != nil {
		return m.DeleteByStudentAndClassFunc(ctx, studentEmail, classID)
	}
	return 0, nil
}

type mockClasses struct {
	FindAllFunc          func(ctx context.Context) ([]models.Class, error)
	FindByInstructorFunc func(ctx context.Context, email string) ([]models.Class, error)
	InsertFunc           func(ctx context.Context, class models.Class) (models.Class, error)
	UpdateStatusFunc     func(ctx context.Context, id string, status models.ClassStatus) error
	UpdateFeedbackFunc   func(ctx context.Context, id string, feedback string) error
	ReserveSeatFunc      func(ctx context.Context, id string) error
}

func (m *mockClasses) FindAll(ctx context.Context) ([]models.Class, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockClasses) FindByInstructor(ctx context.Context, email string) ([]models.Class, error) {
	if m.FindByInstructorFunc != nil {
		return m.FindByInstructorFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockClasses) Insert(ctx context.Context, class models.Class) (models.Class, error) {
	if m.InsertFunc != nil {
		return m.InsertFunc(ctx, class)
	}
	return class, nil
}

func (m *mockClasses) UpdateStatus(ctx context.Context, id string, status models.ClassStatus) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status)
	}
	return nil
}

func (m *mockClasses) UpdateFeedback(ctx context.Context, id string, feedback string) error {
	if m.UpdateFeedbackFunc != nil {
		return m.UpdateFeedbackFunc(ctx, id, feedback)
	}
	return nil
}

func (m *mockClasses) ReserveSeat(ctx context.Context, id string) error {
	if m.ReserveSeatFunc != nil {
		return m.ReserveSeatFunc(ctx, id)
	}
	return nil
}

type mockUsers struct {
	FindAllFunc               func(ctx context.Context) ([]models.User, error)
	FindByEmailFunc           func(ctx context.Context, email string) (models.User, error)
	FindByRoleFunc            func(ctx context.Context, role models.UserRole) ([]models.User, error)
	CreateFunc                func(ctx context.Context, user models.User) (bool, error)
	UpdateRoleFunc            func(ctx context.Context, id string, role models.UserRole) error
	IncrementTotalStudentFunc func(ctx context.Context, email string) error
}

func (m *mockUsers) FindAll(ctx context.Context) ([]models.User, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockUsers) FindByEmail(ctx context.Context, email string) (models.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return models.User{}, repository.ErrNotFound
}

func (m *mockUsers) FindByRole(ctx context.Context, role models.UserRole) ([]models.User, error) {
	if m.FindByRoleFunc != nil {
		return m.FindByRoleFunc(ctx, role)
	}
	return nil, nil
}

func (m *mockUsers) Create(ctx context.Context, user models.User) (bool, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return true, nil
}

func (m *mockUsers) UpdateRole(ctx context.Context, id string, role models.UserRole) error {
	if m.UpdateRoleFunc != nil {
		return m.UpdateRoleFunc(ctx, id, role)
	}
	return nil
}

func (m *mockUsers) IncrementTotalStudent(ctx context.Context, email string) error {
	if m.IncrementTotalStudentFunc != nil {
		return m.IncrementTotalStudentFunc(ctx, email)
	}
	return nil
}
