package mail

import "log"

type EventKind string

const (
	KindDoctorWelcome        EventKind = "doctor_welcome"
	KindPatientWelcome       EventKind = "patient_welcome"
	KindPasswordReset        EventKind = "password_reset"
	KindPasswordResetSuccess EventKind = "password_reset_success"
)

type Event struct {
	Kind      EventKind
	Email     string
	FirstName string
	LastName  string

	// Secret carries the system password or the timed token, depending on Kind.
	Secret string
}

// Dispatcher queues notification events and delivers them on a worker
// goroutine. The sending path never blocks a request and never propagates a
// delivery failure back to the caller.
type Dispatcher struct {
	notifier Notifier
	queue    chan Event
}

func NewDispatcher(notifier Notifier) *Dispatcher {
	d := &Dispatcher{
		notifier: notifier,
		queue:    make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		var err error
		switch ev.Kind {
		case KindDoctorWelcome:
			err = d.notifier.SendDoctorWelcome(ev.Email, ev.FirstName, ev.LastName, ev.Secret)
		case KindPatientWelcome:
			err = d.notifier.SendPatientWelcome(ev.Email, ev.FirstName, ev.LastName, ev.Secret)
		case KindPasswordReset:
			err = d.notifier.SendPasswordReset(ev.Email, ev.FirstName, ev.LastName, ev.Secret)
		case KindPasswordResetSuccess:
			err = d.notifier.SendPasswordResetSuccess(ev.Email, ev.FirstName, ev.LastName)
		}
		if err != nil {
			log.Println("mail error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// Full queue: drop the mail rather than stall the API.
		log.Println("mail queue full, dropping event")
	}
}
