package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/MikeRez0/ypbookstore/internal/adapter/config"
	"github.com/MikeRez0/ypbookstore/internal/adapter/gateway/vnpay"
	"github.com/MikeRez0/ypbookstore/internal/core/domain"
	"github.com/MikeRez0/ypbookstore/internal/core/port"
	"github.com/MikeRez0/ypbookstore/internal/core/service"
	"github.com/golang/mock/gomock"
	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "SECRETKEY"

func TestService_HandleIPN_Gates(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	pending := domain.Order{
		Reference:     "ref-1",
		UserID:        7,
		Total:         decimal.MustParse("150000"),
		PaymentStatus: domain.PaymentStatusPending,
	}
	completed := pending
	completed.PaymentStatus = domain.PaymentStatusCompleted

	callback := func(code string, amount int64) *domain.PaymentCallback {
		return &domain.PaymentCallback{Reference: "ref-1", ResponseCode: code, Amount: amount, AmountValid: true}
	}
	storageErr := errors.New("connection reset")

	tests := []struct {
		name      string
		mock      prepareMocks
		expResult domain.IPNResult
		expError  error
	}{
		{
			name: "checksum failed",
			mock: func(m mocks) {
				m.gateway.EXPECT().VerifyCallback(gomock.Any()).Return(nil, false)
				m.metrics.EXPECT().IPNHandled("97")
			},
			expResult: domain.IPNChecksumFailed,
		},
		{
			name: "order not found",
			mock: func(m mocks) {
				m.gateway.EXPECT().VerifyCallback(gomock.Any()).Return(callback("00", 15000000), true)
				m.repo.EXPECT().ReadOrderByReference(gomock.Any(), domain.OrderReference("ref-1")).
					Return(nil, domain.ErrDataNotFound)
				m.metrics.EXPECT().IPNHandled("01")
			},
			expResult: domain.IPNOrderNotFound,
		},
		{
			name: "amount mismatch",
			mock: func(m mocks) {
				m.gateway.EXPECT().VerifyCallback(gomock.Any()).Return(callback("00", 15000001), true)
				m.repo.EXPECT().ReadOrderByReference(gomock.Any(), gomock.Any()).Return(&pending, nil)
				m.metrics.EXPECT().IPNHandled("04")
			},
			expResult: domain.IPNInvalidAmount,
		},
		{
			name: "amount not a number",
			mock: func(m mocks) {
				m.gateway.EXPECT().VerifyCallback(gomock.Any()).Return(
					&domain.PaymentCallback{Reference: "ref-1", ResponseCode: "00"}, true)
				m.repo.EXPECT().ReadOrderByReference(gomock.Any(), gomock.Any()).Return(&pending, nil)
				m.metrics.EXPECT().IPNHandled("04")
			},
			expResult: domain.IPNInvalidAmount,
		},
		{
			name: "amount checked before status",
			mock: func(m mocks) {
				m.gateway.EXPECT().VerifyCallback(gomock.Any()).Return(callback("00", 1), true)
				m.repo.EXPECT().ReadOrderByReference(gomock.Any(), gomock.Any()).Return(&completed, nil)
				m.metrics.EXPECT().IPNHandled("04")
			},
			expResult: domain.IPNInvalidAmount,
		},
		{
			name: "already updated",
			mock: func(m mocks) {
				m.gateway.EXPECT().VerifyCallback(gomock.Any()).Return(callback("00", 15000000), true)
				m.repo.EXPECT().ReadOrderByReference(gomock.Any(), gomock.Any()).Return(&completed, nil)
				m.metrics.EXPECT().IPNHandled("02")
			},
			expResult: domain.IPNAlreadyUpdated,
		},
		{
			name: "success completes",
			mock: func(m mocks) {
				m.gateway.EXPECT().VerifyCallback(gomock.Any()).Return(callback("00", 15000000), true)
				m.repo.EXPECT().ReadOrderByReference(gomock.Any(), gomock.Any()).Return(&pending, nil)
				m.repo.EXPECT().TransitionPaymentStatus(gomock.Any(), domain.OrderReference("ref-1"),
					domain.PaymentStatusCompleted).Return(nil)
				m.events.EXPECT().SchedulePaymentEvent(domain.PaymentEvent{
					Reference:    "ref-1",
					UserID:       7,
					Status:       domain.PaymentStatusCompleted,
					ResponseCode: "00",
					Total:        pending.Total,
				})
				m.metrics.EXPECT().IPNHandled("00")
			},
			expResult: domain.IPNSuccess,
		},
		{
			name: "gateway failure code fails order",
			mock: func(m mocks) {
				m.gateway.EXPECT().VerifyCallback(gomock.Any()).Return(callback("24", 15000000), true)
				m.repo.EXPECT().ReadOrderByReference(gomock.Any(), gomock.Any()).Return(&pending, nil)
				m.repo.EXPECT().TransitionPaymentStatus(gomock.Any(), domain.OrderReference("ref-1"),
					domain.PaymentStatusFailed).Return(nil)
				m.events.EXPECT().SchedulePaymentEvent(gomock.Any())
				m.metrics.EXPECT().IPNHandled("00")
			},
			expResult: domain.IPNSuccess,
		},
		{
			name: "lost compare-and-set",
			mock: func(m mocks) {
				m.gateway.EXPECT().VerifyCallback(gomock.Any()).Return(callback("00", 15000000), true)
				m.repo.EXPECT().ReadOrderByReference(gomock.Any(), gomock.Any()).Return(&pending, nil)
				m.repo.EXPECT().TransitionPaymentStatus(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(domain.ErrPaymentAlreadyUpdated)
				m.metrics.EXPECT().IPNHandled("02")
			},
			expResult: domain.IPNAlreadyUpdated,
		},
		{
			name: "storage failure on read",
			mock: func(m mocks) {
				m.gateway.EXPECT().VerifyCallback(gomock.Any()).Return(callback("00", 15000000), true)
				m.repo.EXPECT().ReadOrderByReference(gomock.Any(), gomock.Any()).Return(nil, storageErr)
				m.metrics.EXPECT().IPNHandled("99")
			},
			expResult: domain.IPNUnknownError,
			expError:  storageErr,
		},
		{
			name: "storage failure on update",
			mock: func(m mocks) {
				m.gateway.EXPECT().VerifyCallback(gomock.Any()).Return(callback("00", 15000000), true)
				m.repo.EXPECT().ReadOrderByReference(gomock.Any(), gomock.Any()).Return(&pending, nil)
				m.repo.EXPECT().TransitionPaymentStatus(gomock.Any(), gomock.Any(), gomock.Any()).Return(storageErr)
				m.metrics.EXPECT().IPNHandled("99")
			},
			expResult: domain.IPNUnknownError,
			expError:  storageErr,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m := newMocks(mockCtrl)
			test.mock(m)
			s := newService(t, m)

			result, err := s.HandleIPN(context.Background(), map[string]string{})

			assert.Equal(t, test.expResult, result)
			if test.expError == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, test.expError)
			}
		})
	}
}

func TestService_HandleReturn(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	m := newMocks(mockCtrl)
	m.gateway.EXPECT().VerifyCallback(gomock.Any()).Return(&domain.PaymentCallback{}, true)
	m.gateway.EXPECT().VerifyCallback(gomock.Any()).Return(nil, false)
	m.metrics.EXPECT().ReturnVerified(true)
	m.metrics.EXPECT().ReturnVerified(false)
	s := newService(t, m)

	// no repository expectations: the return path never touches storage
	assert.True(t, s.HandleReturn(context.Background(), map[string]string{}))
	assert.False(t, s.HandleReturn(context.Background(), map[string]string{}))
}

// memRepository is an in-memory store with a compare-and-set transition.
type memRepository struct {
	mu          sync.Mutex
	orders      map[domain.OrderReference]domain.Order
	transitions int
}

func newMemRepository() *memRepository {
	return &memRepository{orders: make(map[domain.OrderReference]domain.Order)}
}

func (r *memRepository) CreateOrder(_ context.Context, order *domain.Order) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[order.Reference]; ok {
		return nil, domain.ErrConflictingData
	}
	r.orders[order.Reference] = *order
	return order, nil
}

func (r *memRepository) ReadOrderByReference(_ context.Context, ref domain.OrderReference) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[ref]
	if !ok {
		return nil, domain.ErrDataNotFound
	}
	return &o, nil
}

func (r *memRepository) ListOrdersByUser(_ context.Context, userID uint64) ([]*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]*domain.Order, 0)
	for _, o := range r.orders {
		if o.UserID == userID {
			o := o
			list = append(list, &o)
		}
	}
	return list, nil
}

func (r *memRepository) TransitionPaymentStatus(_ context.Context,
	ref domain.OrderReference, to domain.PaymentStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[ref]
	if !ok {
		return domain.ErrDataNotFound
	}
	if o.PaymentStatus != domain.PaymentStatusPending {
		return domain.ErrPaymentAlreadyUpdated
	}
	o.PaymentStatus = to
	r.orders[ref] = o
	r.transitions++
	return nil
}

func (r *memRepository) status(ref domain.OrderReference) domain.PaymentStatus {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.orders[ref].PaymentStatus
}

type reconcileFixture struct {
	svc    *service.Service
	repo   *memRepository
	client *vnpay.Client
	events *countingPublisher
}

type countingPublisher struct {
	mu     sync.Mutex
	events []domain.PaymentEvent
}

func (p *countingPublisher) SchedulePaymentEvent(e domain.PaymentEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func (p *countingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.events)
}

func newReconcileFixture(t *testing.T) *reconcileFixture {
	t.Helper()
	mockCtrl := gomock.NewController(t)

	client, err := vnpay.NewClient(&config.VNPay{
		TmnCode:    "TMN01",
		HashSecret: testSecret,
		URL:        "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html",
		ReturnURL:  "http://localhost:8080/api/checkout/vnpay-return",
		Timezone:   "Asia/Ho_Chi_Minh",
	}, zap.NewNop())
	require.NoError(t, err)

	metrics := newMocks(mockCtrl).metrics
	metrics.EXPECT().OrderCreated(gomock.Any()).AnyTimes()
	metrics.EXPECT().IPNHandled(gomock.Any()).AnyTimes()
	metrics.EXPECT().ReturnVerified(gomock.Any()).AnyTimes()

	repo := newMemRepository()
	events := &countingPublisher{}
	svc, err := service.NewService(repo, client, events, metrics, zap.NewNop())
	require.NoError(t, err)

	return &reconcileFixture{svc: svc, repo: repo, client: client, events: events}
}

func (f *reconcileFixture) createGatewayOrder(t *testing.T) domain.OrderReference {
	t.Helper()
	order := checkoutOrder(domain.PaymentMethodVNPay)
	result, err := f.svc.CreateOrder(context.Background(), &order, port.CheckoutOptions{})
	require.NoError(t, err)
	assert.Contains(t, result.PaymentURL, "vnp_Amount=15000000")
	assert.Contains(t, result.PaymentURL, "vnp_SecureHash=")
	return result.Order.Reference
}

func ipnParams(ref domain.OrderReference, code, amount string) map[string]string {
	params := map[string]string{
		vnpay.ParamTxnRef:        string(ref),
		vnpay.ParamAmount:        amount,
		vnpay.ParamResponseCode:  code,
		vnpay.ParamTransactionNo: "14226112",
		vnpay.ParamBankCode:      "NCB",
		vnpay.ParamOrderInfo:     "Thanh toan cho ma GD:" + string(ref),
		vnpay.ParamTmnCode:       "TMN01",
	}
	params[vnpay.ParamSecureHash] = vnpay.Sign(testSecret, vnpay.CanonicalString(params))
	params[vnpay.ParamSecureHashType] = "HmacSHA512"
	return params
}

func TestReconcile_CompletedThenReplay(t *testing.T) {
	f := newReconcileFixture(t)
	ref := f.createGatewayOrder(t)
	params := ipnParams(ref, "00", "15000000")

	result, err := f.svc.HandleIPN(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, "00", result.Code)
	assert.Equal(t, domain.PaymentStatusCompleted, f.repo.status(ref))

	result, err = f.svc.HandleIPN(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, "02", result.Code)
	assert.Equal(t, domain.PaymentStatusCompleted, f.repo.status(ref))

	assert.Equal(t, 1, f.repo.transitions)
	assert.Equal(t, 1, f.events.count())
}

func TestReconcile_NonSuccessCodeFails(t *testing.T) {
	f := newReconcileFixture(t)
	ref := f.createGatewayOrder(t)

	result, err := f.svc.HandleIPN(context.Background(), ipnParams(ref, "24", "15000000"))
	require.NoError(t, err)
	assert.Equal(t, "00", result.Code)
	assert.Equal(t, domain.PaymentStatusFailed, f.repo.status(ref))
}

func TestReconcile_AlteredAmount(t *testing.T) {
	f := newReconcileFixture(t)
	ref := f.createGatewayOrder(t)

	// validly signed, wrong amount
	result, err := f.svc.HandleIPN(context.Background(), ipnParams(ref, "00", "1500000"))
	require.NoError(t, err)
	assert.Equal(t, "04", result.Code)
	assert.Equal(t, domain.PaymentStatusPending, f.repo.status(ref))

	// amount changed after signing
	params := ipnParams(ref, "00", "15000000")
	params[vnpay.ParamAmount] = "100"
	result, err = f.svc.HandleIPN(context.Background(), params)
	require.NoError(t, err)
	assert.Equal(t, "97", result.Code)
	assert.Equal(t, domain.PaymentStatusPending, f.repo.status(ref))
	assert.Equal(t, 0, f.repo.transitions)
}

func TestReconcile_UnknownOrder(t *testing.T) {
	f := newReconcileFixture(t)

	result, err := f.svc.HandleIPN(context.Background(), ipnParams("no-such-order", "00", "15000000"))
	require.NoError(t, err)
	assert.Equal(t, "01", result.Code)
	assert.Equal(t, 0, f.repo.transitions)
}

func TestReconcile_ConcurrentDeliveries(t *testing.T) {
	f := newReconcileFixture(t)
	ref := f.createGatewayOrder(t)
	params := ipnParams(ref, "00", "15000000")

	const deliveries = 16
	codes := make(chan string, deliveries)
	var wg sync.WaitGroup
	for i := 0; i < deliveries; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := f.svc.HandleIPN(context.Background(), params)
			assert.NoError(t, err)
			codes <- result.Code
		}()
	}
	wg.Wait()
	close(codes)

	counts := map[string]int{}
	for code := range codes {
		counts[code]++
	}
	assert.Equal(t, 1, counts["00"])
	assert.Equal(t, deliveries-1, counts["02"])
	assert.Equal(t, 1, f.repo.transitions)
	assert.Equal(t, 1, f.events.count())
}

func TestReconcile_ReturnDoesNotMutate(t *testing.T) {
	f := newReconcileFixture(t)
	ref := f.createGatewayOrder(t)

	assert.True(t, f.svc.HandleReturn(context.Background(), ipnParams(ref, "00", "15000000")))
	assert.False(t, f.svc.HandleReturn(context.Background(), map[string]string{vnpay.ParamTxnRef: string(ref)}))
	assert.Equal(t, domain.PaymentStatusPending, f.repo.status(ref))
}
