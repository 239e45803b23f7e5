package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"linkboard/internal/domain/audit"
	"linkboard/internal/domain/order"
	"linkboard/internal/domain/payment"
	"linkboard/internal/domain/site"
	"linkboard/internal/domain/task"
	"linkboard/internal/domain/user"
	"linkboard/internal/listview"
	"linkboard/internal/session"
	"linkboard/internal/store/repositories"
	"linkboard/internal/upstream"

	"github.com/rs/zerolog/log"
)

// Mutation action names, shared between handlers, mutators and the audit
// trail.
const (
	ActionMarkPaid         = "markAsPaid"
	ActionFinalizeTask     = "finalizeTask"
	ActionRejectTask       = "rejectTask"
	ActionSubmitLink       = "submitLink"
	ActionSubmitContent    = "submitContent"
	ActionSubmitWithdrawal = "submitWithdrawal"
	ActionChangePassword   = "changePassword"
	ActionUpdateProfile    = "updateProfile"
)

// Service holds one set of list-view controllers per signed-in session — the
// gateway analog of the dashboard pages a user has mounted. Controllers are
// created lazily on first touch and evicted when the session goes idle or
// logs out.
type Service struct {
	api   *upstream.Client
	audit repositories.AuditRepository // nil disables auditing

	mu    sync.Mutex
	views map[string]*viewSet
}

// viewSet is the per-session controller registry.
type viewSet struct {
	sess     session.Session
	touched  time.Time
	payments *listview.Controller[payment.Payment]
	users    *listview.Controller[user.User]
	sites    *listview.Controller[site.Site]
	tasks    *listview.Controller[task.Task]
	orders   *listview.Controller[order.Order]
}

func NewService(api *upstream.Client, auditRepo repositories.AuditRepository) *Service {
	return &Service{
		api:   api,
		audit: auditRepo,
		views: make(map[string]*viewSet),
	}
}

func (s *Service) viewsFor(sess session.Session) *viewSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	vs, ok := s.views[sess.Token]
	if !ok {
		vs = &viewSet{sess: sess}
		s.views[sess.Token] = vs
	}
	vs.touched = time.Now()
	return vs
}

// Payments returns the session's payments controller, mounting it on first
// touch.
func (s *Service) Payments(sess session.Session) *listview.Controller[payment.Payment] {
	vs := s.viewsFor(sess)
	s.mu.Lock()
	defer s.mu.Unlock()
	if vs.payments == nil {
		token := sess.Token
		vs.payments = listview.New(
			paymentsConfig(),
			func(ctx context.Context) ([]payment.Payment, error) {
				return s.api.FetchPayments(ctx, token)
			},
			s.paymentsMutator(token),
		)
	}
	return vs.payments
}

func (s *Service) paymentsMutator(token string) listview.Mutator {
	return func(ctx context.Context, action string, id int64, payload any) error {
		switch action {
		case ActionMarkPaid:
			return s.api.MarkPaid(ctx, token, id)
		case ActionSubmitWithdrawal:
			req, ok := payload.(payment.WithdrawalRequest)
			if !ok {
				return fmt.Errorf("withdrawal payload is required")
			}
			return s.api.SubmitWithdrawal(ctx, token, req)
		default:
			return fmt.Errorf("unknown payments action: %s", action)
		}
	}
}

func (s *Service) Users(sess session.Session) *listview.Controller[user.User] {
	vs := s.viewsFor(sess)
	s.mu.Lock()
	defer s.mu.Unlock()
	if vs.users == nil {
		token := sess.Token
		vs.users = listview.New(
			usersConfig(),
			func(ctx context.Context) ([]user.User, error) {
				return s.api.FetchUsers(ctx, token)
			},
			nil,
		)
	}
	return vs.users
}

func (s *Service) Sites(sess session.Session) *listview.Controller[site.Site] {
	vs := s.viewsFor(sess)
	s.mu.Lock()
	defer s.mu.Unlock()
	if vs.sites == nil {
		token := sess.Token
		vs.sites = listview.New(
			sitesConfig(),
			func(ctx context.Context) ([]site.Site, error) {
				return s.api.FetchSites(ctx, token)
			},
			nil,
		)
	}
	return vs.sites
}

func (s *Service) Tasks(sess session.Session) *listview.Controller[task.Task] {
	vs := s.viewsFor(sess)
	s.mu.Lock()
	defer s.mu.Unlock()
	if vs.tasks == nil {
		token := sess.Token
		vs.tasks = listview.New(
			tasksConfig(),
			func(ctx context.Context) ([]task.Task, error) {
				return s.api.FetchTasks(ctx, token)
			},
			s.tasksMutator(token),
		)
	}
	return vs.tasks
}

func (s *Service) tasksMutator(token string) listview.Mutator {
	return func(ctx context.Context, action string, id int64, payload any) error {
		switch action {
		case ActionFinalizeTask:
			return s.api.FinalizeTask(ctx, token, id)
		case ActionRejectTask:
			reason, _ := payload.(string)
			return s.api.RejectTask(ctx, token, id, reason)
		case ActionSubmitLink:
			liveURL, _ := payload.(string)
			return s.api.SubmitLink(ctx, token, id, liveURL)
		case ActionSubmitContent:
			docURL, _ := payload.(string)
			return s.api.SubmitContent(ctx, token, id, docURL)
		default:
			return fmt.Errorf("unknown tasks action: %s", action)
		}
	}
}

func (s *Service) Orders(sess session.Session) *listview.Controller[order.Order] {
	vs := s.viewsFor(sess)
	s.mu.Lock()
	defer s.mu.Unlock()
	if vs.orders == nil {
		token := sess.Token
		vs.orders = listview.New(
			ordersConfig(),
			func(ctx context.Context) ([]order.Order, error) {
				return s.api.FetchOrders(ctx, token)
			},
			nil,
		)
	}
	return vs.orders
}

// MutatePayments dispatches a payments action and records it in the audit
// trail regardless of outcome.
func (s *Service) MutatePayments(ctx context.Context, sess session.Session, action string, id int64, payload any) error {
	err := s.Payments(sess).Mutate(ctx, action, id, payload)
	s.recordAudit(ctx, sess, action, id, err)
	return err
}

// MutateTasks dispatches a tasks action and records it in the audit trail.
func (s *Service) MutateTasks(ctx context.Context, sess session.Session, action string, id int64, payload any) error {
	err := s.Tasks(sess).Mutate(ctx, action, id, payload)
	s.recordAudit(ctx, sess, action, id, err)
	return err
}

// SubmitWithdrawal validates the payout request locally first; an invalid
// request never reaches the network. A successful dispatch refetches the
// session's payments collection.
func (s *Service) SubmitWithdrawal(ctx context.Context, sess session.Session, req payment.WithdrawalRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return s.MutatePayments(ctx, sess, ActionSubmitWithdrawal, 0, req)
}

// ChangePassword proxies the upstream call; local validation happens in the
// handler before this point.
func (s *Service) ChangePassword(ctx context.Context, sess session.Session, current, next string) error {
	err := s.api.ChangePassword(ctx, sess.Token, current, next)
	s.recordAudit(ctx, sess, ActionChangePassword, 0, err)
	return err
}

// UpdateProfile proxies the upstream call.
func (s *Service) UpdateProfile(ctx context.Context, sess session.Session, upd upstream.ProfileUpdate) error {
	err := s.api.UpdateProfile(ctx, sess.Token, upd)
	s.recordAudit(ctx, sess, ActionUpdateProfile, 0, err)
	return err
}

// Audit lists the recorded mutation trail, newest first.
func (s *Service) Audit(ctx context.Context, limit, offset int) ([]audit.Entry, error) {
	if s.audit == nil {
		return nil, nil
	}
	return s.audit.List(ctx, limit, offset)
}

// recordAudit is best-effort: a failed write is logged and never surfaces to
// the user path.
func (s *Service) recordAudit(ctx context.Context, sess session.Session, action string, id int64, cause error) {
	if s.audit == nil {
		return
	}
	entry := &audit.Entry{
		ActorID:   sess.UserID,
		ActorName: sess.Name,
		Role:      string(sess.Role),
		Action:    action,
		RecordID:  id,
		Outcome:   audit.OutcomeSuccess,
	}
	if cause != nil {
		entry.Outcome = audit.OutcomeFailure
		entry.Detail = cause.Error()
	}
	if err := s.audit.Record(ctx, entry); err != nil {
		log.Error().Err(err).Str("action", action).Msg("audit write failed")
	}
}

// Drop discards a session's controllers, e.g. on logout.
func (s *Service) Drop(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.views, token)
}

// EvictIdle unmounts controller sets untouched for longer than idle and
// returns how many were dropped.
func (s *Service) EvictIdle(idle time.Duration) int {
	cutoff := time.Now().Add(-idle)
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for token, vs := range s.views {
		if vs.touched.Before(cutoff) {
			delete(s.views, token)
			n++
		}
	}
	return n
}
