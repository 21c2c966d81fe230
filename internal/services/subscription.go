package services

// Subscription is a registered change handler. Unsubscribe is idempotent.
type Subscription struct {
	fn    func()
	owner *observers
}

// Unsubscribe stops further notifications to the handler
func (s *Subscription) Unsubscribe() {
	if s == nil || s.owner == nil {
		return
	}
	s.owner.remove(s)
	s.owner = nil
}

// observers calls handlers synchronously in subscription order
type observers struct {
	subs []*Subscription
}

func (o *observers) subscribe(fn func()) *Subscription {
	sub := &Subscription{fn: fn, owner: o}
	o.subs = append(o.subs, sub)
	return sub
}

func (o *observers) remove(sub *Subscription) {
	for i, s := range o.subs {
		if s == sub {
			o.subs = append(o.subs[:i:i], o.subs[i+1:]...)
			return
		}
	}
}

func (o *observers) notify() {
	// Handlers may unsubscribe while we iterate
	subs := append([]*Subscription(nil), o.subs...)
	for _, s := range subs {
		if s.owner == o {
			s.fn()
		}
	}
}
