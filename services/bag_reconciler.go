package services

import (
	"context"
	"log"
	"sync"

	"github.com/16SULPHUR/new-vh-ecom/models"
)

// BagReconciler owns the server-visible bag state for every active cart
// session. It is the only writer of BagView: the view is replaced wholesale
// by a successful authoritative fetch and never patched in place after a
// mutation. Every mutation, success or failure, is followed by a full
// re-fetch so the view always converges on platform truth, including any
// server-side stock clamping.
//
// Rapid successive mutations have no ordering guarantee beyond last-re-fetch
// wins; the per-variant in-flight flag rejects overlapping updates for the
// same variant to reduce double submission.
type BagReconciler struct {
	gateway CartGateway

	mu   sync.RWMutex
	bags map[string]*bagSession
}

type bagSession struct {
	mu        sync.Mutex
	state     models.BagState
	items     []models.LineItem
	lastError string
	notice    string
	updating  map[int64]bool

	// loaded is set by the first successful authoritative fetch. Until then
	// there is no known-good view to fall back to on a refetch failure.
	loaded bool
}

func NewBagReconciler(gateway CartGateway) *BagReconciler {
	return &BagReconciler{
		gateway: gateway,
		bags:    make(map[string]*bagSession),
	}
}

func (r *BagReconciler) session(cartID string) *bagSession {
	r.mu.RLock()
	s, ok := r.bags[cartID]
	r.mu.RUnlock()
	if ok {
		return s
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok = r.bags[cartID]; ok {
		return s
	}
	s = &bagSession{
		state:    models.BagIdle,
		updating: make(map[int64]bool),
	}
	r.bags[cartID] = s
	return s
}

// State reports the current lifecycle state for a cart session.
func (r *BagReconciler) State(cartID string) models.BagState {
	s := r.session(cartID)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Snapshot projects the current BagView. The pending notice, if any, is
// consumed by the snapshot (notices are one-shot and non-blocking).
func (r *BagReconciler) Snapshot(cartID string) models.BagView {
	s := r.session(cartID)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked(true)
}

func (s *bagSession) viewLocked(consumeNotice bool) models.BagView {
	items := make([]models.LineItem, len(s.items))
	copy(items, s.items)

	var subtotal float64
	for _, item := range items {
		subtotal += item.UnitPrice * float64(item.Quantity)
	}

	view := models.BagView{
		State:     s.state,
		Items:     items,
		Subtotal:  subtotal,
		LastError: s.lastError,
		Notice:    s.notice,
	}
	if consumeNotice {
		s.notice = ""
	}
	return view
}

// Refresh performs the authoritative list fetch: Idle/Ready -> Loading ->
// Ready on success. On failure the view is cleared and the session moves to
// Error with lastError populated.
func (r *BagReconciler) Refresh(ctx context.Context, cartID string) (models.BagView, error) {
	s := r.session(cartID)

	s.mu.Lock()
	s.state = models.BagLoading
	s.mu.Unlock()

	items, err := r.gateway.ListLineItems(ctx, cartID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = models.BagError
		s.items = nil
		s.lastError = "Error fetching cart items"
		log.Printf("❌ Bag refresh failed for cart %s: %v", cartID, err)
		return s.viewLocked(true), err
	}

	s.state = models.BagReady
	s.items = items
	s.lastError = ""
	s.loaded = true
	return s.viewLocked(true), nil
}

// SetQuantity requests an absolute quantity for a variant. The request is
// clamped to [1, availableStock] before being sent; below 1 it becomes a
// removal; at the stock ceiling it is rejected without a remote call. The
// upsert sets the absolute quantity (re-adding a variant replaces, never
// additively merges).
func (r *BagReconciler) SetQuantity(ctx context.Context, cartID string, variantID int64, requested int) (models.BagView, error) {
	s := r.session(cartID)

	s.mu.Lock()
	if s.updating[variantID] {
		view := s.viewLocked(false)
		s.mu.Unlock()
		return view, ErrVariantBusy
	}

	send, remove, err := resolveQuantity(findItem(s.items, variantID), variantID, requested)
	if err != nil {
		s.notice = err.Error()
		view := s.viewLocked(true)
		s.mu.Unlock()
		return view, err
	}

	s.updating[variantID] = true
	s.state = models.BagMutating
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.updating, variantID)
		s.mu.Unlock()
	}()

	var mutErr error
	if remove {
		mutErr = r.gateway.RemoveLineItem(ctx, cartID, variantID)
	} else {
		_, mutErr = r.gateway.UpsertLineItem(ctx, cartID, variantID, send)
	}

	return r.settle(ctx, cartID, s, mutErr)
}

// Remove deletes a variant's line item, then re-fetches.
func (r *BagReconciler) Remove(ctx context.Context, cartID string, variantID int64) (models.BagView, error) {
	s := r.session(cartID)

	s.mu.Lock()
	if s.updating[variantID] {
		view := s.viewLocked(false)
		s.mu.Unlock()
		return view, ErrVariantBusy
	}
	s.updating[variantID] = true
	s.state = models.BagMutating
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.updating, variantID)
		s.mu.Unlock()
	}()

	mutErr := r.gateway.RemoveLineItem(ctx, cartID, variantID)

	return r.settle(ctx, cartID, s, mutErr)
}

// settle runs the unconditional post-mutation re-fetch. The mutation's own
// response is never trusted: even after a failed mutation the session
// resolves to current platform truth, which may be unchanged. If the
// re-fetch itself fails the last known-good view is retained (not cleared,
// unlike the initial load) and a notice is raised; a session that has never
// loaded successfully stays in the Error state instead.
func (r *BagReconciler) settle(ctx context.Context, cartID string, s *bagSession, mutErr error) (models.BagView, error) {
	s.mu.Lock()
	s.state = models.BagLoading
	s.mu.Unlock()

	items, listErr := r.gateway.ListLineItems(ctx, cartID)

	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case listErr == nil:
		s.state = models.BagReady
		s.items = items
		s.lastError = ""
		s.loaded = true
	case s.loaded:
		// Retain the last known-good view.
		s.state = models.BagReady
		s.notice = "Cart may be out of date"
		log.Printf("⚠️ Post-mutation refetch failed for cart %s: %v", cartID, listErr)
	default:
		// No fetch has ever succeeded, so there is nothing to fall back to.
		s.state = models.BagError
		s.lastError = "Error fetching cart items"
		log.Printf("⚠️ Post-mutation refetch failed for cart %s: %v", cartID, listErr)
	}

	if mutErr != nil {
		if IsValidation(mutErr) {
			s.notice = "Requested quantity exceeds available stock"
		} else {
			s.notice = "Failed to update cart"
		}
		log.Printf("❌ Bag mutation failed for cart %s: %v", cartID, mutErr)
		return s.viewLocked(true), mutErr
	}

	return s.viewLocked(true), listErr
}

func findItem(items []models.LineItem, variantID int64) *models.LineItem {
	for i := range items {
		if items[i].VariantID == variantID {
			return &items[i]
		}
	}
	return nil
}

// resolveQuantity applies the quantity-change policy before anything is sent:
// below 1 means removal; above the known stock ceiling the request is clamped,
// except when the item already sits at the ceiling, which is a rejected no-op.
// For a variant not yet in the bag no stock is known locally, so the request
// goes through as-is and the platform enforces the ceiling.
func resolveQuantity(item *models.LineItem, variantID int64, requested int) (send int, remove bool, err error) {
	if requested < 1 {
		return 0, true, nil
	}
	if item == nil {
		return requested, false, nil
	}
	if requested > item.AvailableStock {
		if item.Quantity >= item.AvailableStock {
			return 0, false, &ValidationError{
				VariantID: variantID,
				Requested: requested,
				Detail:    "quantity is already at the stock ceiling",
			}
		}
		return item.AvailableStock, false, nil
	}
	return requested, false, nil
}
