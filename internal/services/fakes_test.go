package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"shopora/internal/models/db_models"
	"shopora/pkg/sslcommerz"
)

// In-memory repository fakes. They model only what the services observe:
// lookups by id or tenant, counts, and the conditional PAID transition.

type fakeSubscriptionRepo struct {
	subs map[uuid.UUID]*db_models.Subscription // keyed by tenant id
	err  error
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{subs: map[uuid.UUID]*db_models.Subscription{}}
}

func (f *fakeSubscriptionRepo) FindByTenantID(_ context.Context, tenantID uuid.UUID) (*db_models.Subscription, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.subs[tenantID], nil
}

func (f *fakeSubscriptionRepo) Create(_ context.Context, sub *db_models.Subscription) error {
	if f.err != nil {
		return f.err
	}
	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	f.subs[sub.TenantID] = sub
	return nil
}

func (f *fakeSubscriptionRepo) Save(_ context.Context, sub *db_models.Subscription) error {
	return f.Create(context.Background(), sub)
}

func (f *fakeSubscriptionRepo) UpdateStatus(_ context.Context, id uuid.UUID, status db_models.SubscriptionStatus) error {
	for _, sub := range f.subs {
		if sub.ID == id {
			sub.Status = status
			return nil
		}
	}
	return errors.New("subscription not found")
}

func (f *fakeSubscriptionRepo) ListByStatuses(_ context.Context, statuses []db_models.SubscriptionStatus) ([]db_models.Subscription, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []db_models.Subscription
	for _, sub := range f.subs {
		for _, status := range statuses {
			if sub.Status == status {
				out = append(out, *sub)
				break
			}
		}
	}
	return out, nil
}

type fakePlanRepo struct {
	plans     []*db_models.Plan
	liveCount int64
}

func (f *fakePlanRepo) add(plan *db_models.Plan) *db_models.Plan {
	if plan.ID == uuid.Nil {
		plan.ID = uuid.New()
	}
	f.plans = append(f.plans, plan)
	return plan
}

func (f *fakePlanRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Plan, error) {
	for _, plan := range f.plans {
		if plan.ID == id {
			return plan, nil
		}
	}
	return nil, nil
}

func (f *fakePlanRepo) FindByName(_ context.Context, name string) (*db_models.Plan, error) {
	for _, plan := range f.plans {
		if plan.Name == name {
			return plan, nil
		}
	}
	return nil, nil
}

func (f *fakePlanRepo) FindTrialPlan(_ context.Context) (*db_models.Plan, error) {
	for _, plan := range f.plans {
		if plan.PriceMinor == 0 && plan.TrialDays > 0 && plan.IsActive {
			return plan, nil
		}
	}
	return nil, nil
}

func (f *fakePlanRepo) ListActive(_ context.Context) ([]db_models.Plan, error) {
	var out []db_models.Plan
	for _, plan := range f.plans {
		if plan.IsActive {
			out = append(out, *plan)
		}
	}
	return out, nil
}

func (f *fakePlanRepo) ListAll(_ context.Context) ([]db_models.Plan, error) {
	var out []db_models.Plan
	for _, plan := range f.plans {
		out = append(out, *plan)
	}
	return out, nil
}

func (f *fakePlanRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.plans)), nil
}

func (f *fakePlanRepo) Create(_ context.Context, plan *db_models.Plan) error {
	f.add(plan)
	return nil
}

func (f *fakePlanRepo) CreateBatch(_ context.Context, plans []db_models.Plan) error {
	for i := range plans {
		f.add(&plans[i])
	}
	return nil
}

func (f *fakePlanRepo) Save(_ context.Context, plan *db_models.Plan) error {
	for i, existing := range f.plans {
		if existing.ID == plan.ID {
			f.plans[i] = plan
			return nil
		}
	}
	f.add(plan)
	return nil
}

func (f *fakePlanRepo) CountLiveSubscriptions(_ context.Context, _ uuid.UUID) (int64, error) {
	return f.liveCount, nil
}

type fakeTenantRepo struct {
	tenants    map[uuid.UUID]*db_models.Tenant
	byDomain   map[string]*db_models.Tenant
	brands     map[uuid.UUID]*db_models.TenantBrand
	trialMarks int
}

func newFakeTenantRepo() *fakeTenantRepo {
	return &fakeTenantRepo{
		tenants:  map[uuid.UUID]*db_models.Tenant{},
		byDomain: map[string]*db_models.Tenant{},
		brands:   map[uuid.UUID]*db_models.TenantBrand{},
	}
}

func (f *fakeTenantRepo) add(tenant *db_models.Tenant) *db_models.Tenant {
	if tenant.ID == uuid.Nil {
		tenant.ID = uuid.New()
	}
	f.tenants[tenant.ID] = tenant
	if tenant.Domain != nil {
		f.byDomain[*tenant.Domain] = tenant
	}
	return tenant
}

func (f *fakeTenantRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.Tenant, error) {
	return f.tenants[id], nil
}

func (f *fakeTenantRepo) FindByDomain(_ context.Context, domain string) (*db_models.Tenant, error) {
	tenant := f.byDomain[domain]
	if tenant == nil || !tenant.IsActive {
		return nil, nil
	}
	return tenant, nil
}

func (f *fakeTenantRepo) CreateWithAdmin(_ context.Context, tenant *db_models.Tenant, admin *db_models.User) error {
	f.add(tenant)
	admin.TenantID = &tenant.ID
	if admin.ID == uuid.Nil {
		admin.ID = uuid.New()
	}
	return nil
}

func (f *fakeTenantRepo) MarkTrialUsed(_ context.Context, id uuid.UUID) error {
	tenant := f.tenants[id]
	if tenant == nil {
		return errors.New("tenant not found")
	}
	tenant.HasUsedTrial = true
	f.trialMarks++
	return nil
}

func (f *fakeTenantRepo) FindBrand(_ context.Context, tenantID uuid.UUID) (*db_models.TenantBrand, error) {
	return f.brands[tenantID], nil
}

func (f *fakeTenantRepo) SaveBrand(_ context.Context, brand *db_models.TenantBrand) error {
	if brand.ID == uuid.Nil {
		brand.ID = uuid.New()
	}
	f.brands[brand.TenantID] = brand
	return nil
}

type fakeUserRepo struct {
	users []*db_models.User
}

func (f *fakeUserRepo) add(user *db_models.User) *db_models.User {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	f.users = append(f.users, user)
	return user
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*db_models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*db_models.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindAdminForTenant(_ context.Context, tenantID uuid.UUID) (*db_models.User, error) {
	for _, user := range f.users {
		if user.TenantID != nil && *user.TenantID == tenantID && user.Role == db_models.RoleTenantAdmin {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) ListCustomersByTenant(_ context.Context, tenantID uuid.UUID) ([]db_models.User, error) {
	var out []db_models.User
	for _, user := range f.users {
		if user.TenantID != nil && *user.TenantID == tenantID && user.Role == db_models.RoleCustomer {
			out = append(out, *user)
		}
	}
	return out, nil
}

func (f *fakeUserRepo) Create(_ context.Context, user *db_models.User) error {
	f.add(user)
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *db_models.User) error {
	for i, existing := range f.users {
		if existing.ID == user.ID {
			f.users[i] = user
			return nil
		}
	}
	return errors.New("user not found")
}

type fakeProductRepo struct {
	products []*db_models.Product
}

func (f *fakeProductRepo) add(product *db_models.Product) *db_models.Product {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	f.products = append(f.products, product)
	return product
}

func (f *fakeProductRepo) CountByTenant(_ context.Context, tenantID uuid.UUID) (int64, error) {
	var count int64
	for _, product := range f.products {
		if product.TenantID == tenantID {
			count++
		}
	}
	return count, nil
}

func (f *fakeProductRepo) ListByTenant(_ context.Context, tenantID uuid.UUID) ([]db_models.Product, error) {
	var out []db_models.Product
	for _, product := range f.products {
		if product.TenantID == tenantID {
			out = append(out, *product)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) ListPublishedByTenant(_ context.Context, tenantID uuid.UUID) ([]db_models.Product, error) {
	var out []db_models.Product
	for _, product := range f.products {
		if product.TenantID == tenantID && product.IsPublished {
			out = append(out, *product)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) FindByIDForTenant(_ context.Context, id, tenantID uuid.UUID) (*db_models.Product, error) {
	for _, product := range f.products {
		if product.ID == id && product.TenantID == tenantID {
			found := *product
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) Create(_ context.Context, product *db_models.Product) error {
	f.add(product)
	return nil
}

func (f *fakeProductRepo) Save(_ context.Context, _ *db_models.Product) error { return nil }

func (f *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, product := range f.products {
		if product.ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeProductRepo) AdjustStock(_ context.Context, id uuid.UUID, delta int) error {
	for _, product := range f.products {
		if product.ID == id {
			product.StockQty += delta
			return nil
		}
	}
	return errors.New("product not found")
}

type fakeCategoryRepo struct {
	categories    []*db_models.Category
	subcategories []*db_models.SubCategory
}

func (f *fakeCategoryRepo) addCategory(category *db_models.Category) *db_models.Category {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	f.categories = append(f.categories, category)
	return category
}

func (f *fakeCategoryRepo) addSub(sub *db_models.SubCategory) *db_models.SubCategory {
	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	f.subcategories = append(f.subcategories, sub)
	return sub
}

func (f *fakeCategoryRepo) CountByTenant(_ context.Context, tenantID uuid.UUID) (int64, error) {
	var count int64
	for _, category := range f.categories {
		if category.TenantID == tenantID {
			count++
		}
	}
	return count, nil
}

func (f *fakeCategoryRepo) MaxSubcategoryCount(_ context.Context, tenantID uuid.UUID) (int64, error) {
	perCategory := map[uuid.UUID]int64{}
	for _, sub := range f.subcategories {
		if sub.TenantID == tenantID {
			perCategory[sub.CategoryID]++
		}
	}
	var max int64
	for _, count := range perCategory {
		if count > max {
			max = count
		}
	}
	return max, nil
}

func (f *fakeCategoryRepo) CountSubcategories(_ context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64
	for _, sub := range f.subcategories {
		if sub.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

func (f *fakeCategoryRepo) ListByTenant(_ context.Context, tenantID uuid.UUID) ([]db_models.Category, error) {
	var out []db_models.Category
	for _, category := range f.categories {
		if category.TenantID == tenantID {
			out = append(out, *category)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) FindByIDForTenant(_ context.Context, id, tenantID uuid.UUID) (*db_models.Category, error) {
	for _, category := range f.categories {
		if category.ID == id && category.TenantID == tenantID {
			return category, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *db_models.Category) error {
	f.addCategory(category)
	return nil
}

func (f *fakeCategoryRepo) Save(_ context.Context, _ *db_models.Category) error { return nil }

func (f *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, category := range f.categories {
		if category.ID == id {
			f.categories = append(f.categories[:i], f.categories[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeCategoryRepo) CreateSubCategory(_ context.Context, sub *db_models.SubCategory) error {
	f.addSub(sub)
	return nil
}

func (f *fakeCategoryRepo) ListSubCategories(_ context.Context, categoryID uuid.UUID) ([]db_models.SubCategory, error) {
	var out []db_models.SubCategory
	for _, sub := range f.subcategories {
		if sub.CategoryID == categoryID {
			out = append(out, *sub)
		}
	}
	return out, nil
}

func (f *fakeCategoryRepo) FindSubCategoryForTenant(_ context.Context, id, tenantID uuid.UUID) (*db_models.SubCategory, error) {
	for _, sub := range f.subcategories {
		if sub.ID == id && sub.TenantID == tenantID {
			return sub, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) DeleteSubCategory(_ context.Context, id uuid.UUID) error {
	for i, sub := range f.subcategories {
		if sub.ID == id {
			f.subcategories = append(f.subcategories[:i], f.subcategories[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakePaymentRepo struct {
	payments []*db_models.Payment
}

func (f *fakePaymentRepo) add(payment *db_models.Payment) *db_models.Payment {
	if payment.ID == uuid.Nil {
		payment.ID = uuid.New()
	}
	f.payments = append(f.payments, payment)
	return payment
}

func (f *fakePaymentRepo) Create(_ context.Context, payment *db_models.Payment) error {
	f.add(payment)
	return nil
}

func (f *fakePaymentRepo) FindByTransactionID(_ context.Context, transactionID string) (*db_models.Payment, error) {
	for _, payment := range f.payments {
		if payment.TransactionID == transactionID {
			return payment, nil
		}
	}
	return nil, nil
}

func (f *fakePaymentRepo) FindByIDForTenant(_ context.Context, id, tenantID uuid.UUID) (*db_models.Payment, error) {
	for _, payment := range f.payments {
		if payment.ID == id && payment.TenantID == tenantID {
			return payment, nil
		}
	}
	return nil, nil
}

func (f *fakePaymentRepo) FindByTransactionIDForTenant(_ context.Context, transactionID string, tenantID uuid.UUID) (*db_models.Payment, error) {
	for _, payment := range f.payments {
		if payment.TransactionID == transactionID && payment.TenantID == tenantID {
			return payment, nil
		}
	}
	return nil, nil
}

func (f *fakePaymentRepo) ListByTenant(_ context.Context, tenantID uuid.UUID) ([]db_models.Payment, error) {
	var out []db_models.Payment
	for _, payment := range f.payments {
		if payment.TenantID == tenantID {
			out = append(out, *payment)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) MarkFailed(_ context.Context, id uuid.UUID, raw datatypes.JSON) error {
	for _, payment := range f.payments {
		if payment.ID == id {
			payment.Status = db_models.PaymentStatusFailed
			payment.RawResponse = raw
			return nil
		}
	}
	return errors.New("payment not found")
}

// MarkPaid mirrors the conditional UPDATE: the transition succeeds only if
// the row is not already PAID.
func (f *fakePaymentRepo) MarkPaid(_ context.Context, id uuid.UUID, validationID string, raw datatypes.JSON) (bool, error) {
	for _, payment := range f.payments {
		if payment.ID == id {
			if payment.Status == db_models.PaymentStatusPaid {
				return false, nil
			}
			payment.Status = db_models.PaymentStatusPaid
			payment.ValidationID = &validationID
			payment.RawResponse = raw
			return true, nil
		}
	}
	return false, errors.New("payment not found")
}

func (f *fakePaymentRepo) SetRawResponse(_ context.Context, id uuid.UUID, raw datatypes.JSON) error {
	for _, payment := range f.payments {
		if payment.ID == id {
			payment.RawResponse = raw
			return nil
		}
	}
	return errors.New("payment not found")
}

type fakeNotificationRepo struct {
	notifications []*db_models.Notification
	createdStamps []int64 // parallel to notifications, unix create time
	nowUnix       int64
}

func (f *fakeNotificationRepo) Create(_ context.Context, notification *db_models.Notification) error {
	if notification.ID == uuid.Nil {
		notification.ID = uuid.New()
	}
	f.notifications = append(f.notifications, notification)
	f.createdStamps = append(f.createdStamps, f.nowUnix)
	return nil
}

func (f *fakeNotificationRepo) ListByTenant(_ context.Context, tenantID uuid.UUID) ([]db_models.Notification, error) {
	var out []db_models.Notification
	for _, n := range f.notifications {
		if n.TenantID == tenantID {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) ListUnread(_ context.Context, tenantID uuid.UUID) ([]db_models.Notification, error) {
	var out []db_models.Notification
	for _, n := range f.notifications {
		if n.TenantID == tenantID && !n.IsRead {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (f *fakeNotificationRepo) CountUnread(_ context.Context, tenantID uuid.UUID) (int64, error) {
	unread, _ := f.ListUnread(context.Background(), tenantID)
	return int64(len(unread)), nil
}

func (f *fakeNotificationRepo) FindByIDForTenant(_ context.Context, id, tenantID uuid.UUID) (*db_models.Notification, error) {
	for _, n := range f.notifications {
		if n.ID == id && n.TenantID == tenantID {
			return n, nil
		}
	}
	return nil, nil
}

func (f *fakeNotificationRepo) MarkRead(_ context.Context, id uuid.UUID) error {
	for _, n := range f.notifications {
		if n.ID == id {
			n.IsRead = true
			return nil
		}
	}
	return errors.New("notification not found")
}

func (f *fakeNotificationRepo) MarkAllRead(_ context.Context, tenantID uuid.UUID) error {
	for _, n := range f.notifications {
		if n.TenantID == tenantID {
			n.IsRead = true
		}
	}
	return nil
}

func (f *fakeNotificationRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, n := range f.notifications {
		if n.ID == id {
			f.notifications = append(f.notifications[:i], f.notifications[i+1:]...)
			f.createdStamps = append(f.createdStamps[:i], f.createdStamps[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeNotificationRepo) ExistsSince(_ context.Context, tenantID uuid.UUID, types []db_models.NotificationType, sinceUnix int64) (bool, error) {
	for i, n := range f.notifications {
		if n.TenantID != tenantID || f.createdStamps[i] < sinceUnix {
			continue
		}
		for _, t := range types {
			if n.Type == t {
				return true, nil
			}
		}
	}
	return false, nil
}

type fakeOrderRepo struct {
	orders []*db_models.Order
}

func (f *fakeOrderRepo) CountByTenant(_ context.Context, tenantID uuid.UUID) (int64, error) {
	var count int64
	for _, order := range f.orders {
		if order.TenantID == tenantID {
			count++
		}
	}
	return count, nil
}

func (f *fakeOrderRepo) ListByTenant(_ context.Context, tenantID uuid.UUID) ([]db_models.Order, error) {
	var out []db_models.Order
	for _, order := range f.orders {
		if order.TenantID == tenantID {
			out = append(out, *order)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) ListByCustomer(_ context.Context, tenantID, customerID uuid.UUID) ([]db_models.Order, error) {
	var out []db_models.Order
	for _, order := range f.orders {
		if order.TenantID == tenantID && order.CustomerID != nil && *order.CustomerID == customerID {
			out = append(out, *order)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) FindByIDForCustomer(_ context.Context, id, tenantID, customerID uuid.UUID) (*db_models.Order, error) {
	for _, order := range f.orders {
		if order.ID == id && order.TenantID == tenantID &&
			order.CustomerID != nil && *order.CustomerID == customerID {
			return order, nil
		}
	}
	return nil, nil
}

func (f *fakeOrderRepo) FindByIDForTenant(_ context.Context, id, tenantID uuid.UUID) (*db_models.Order, error) {
	for _, order := range f.orders {
		if order.ID == id && order.TenantID == tenantID {
			return order, nil
		}
	}
	return nil, nil
}

func (f *fakeOrderRepo) CreateWithItems(_ context.Context, order *db_models.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	f.orders = append(f.orders, order)
	return nil
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, id uuid.UUID, status db_models.OrderStatus) error {
	for _, order := range f.orders {
		if order.ID == id {
			order.Status = status
			return nil
		}
	}
	return errors.New("order not found")
}

// fakeProvider scripts gateway responses for the payment orchestrator.
type fakeProvider struct {
	initResp     *sslcommerz.InitResponse
	initErr      error
	validateResp *sslcommerz.ValidationResponse
	validateErr  error
	initCalls    int
	validCalls   int
}

func (f *fakeProvider) Init(_ context.Context, _ sslcommerz.InitRequest) (*sslcommerz.InitResponse, error) {
	f.initCalls++
	return f.initResp, f.initErr
}

func (f *fakeProvider) Validate(_ context.Context, _ string) (*sslcommerz.ValidationResponse, error) {
	f.validCalls++
	return f.validateResp, f.validateErr
}

// recordingNotifications captures Notify calls for assertions.
type recordingNotifications struct {
	NotificationServiceInterface
	titles []string
}

func (r *recordingNotifications) Notify(_ context.Context, _ uuid.UUID, title, _ string, _ db_models.NotificationType) {
	r.titles = append(r.titles, title)
}

func (r *recordingNotifications) NotifyLimitExceeded(_ context.Context, _ uuid.UUID) error {
	r.titles = append(r.titles, "Plan Limit Exceeded")
	return nil
}
