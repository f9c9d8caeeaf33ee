package event

import (
	"sync"

	"go.uber.org/zap"
)

type Manager struct {
	mu        sync.RWMutex
	listeners []*Listener
}

type Listener struct {
	eventType Type
	channel   chan interface{}
}

func NewManager() *Manager {
	return &Manager{listeners: make([]*Listener, 0)}
}

func (m *Manager) AddEventListener(eventType Type, callback func(msg interface{})) {
	zap.L().With(zap.String("type", string(eventType))).Debug("EventManager: AddListener")

	listener := Listener{
		eventType: eventType,
		channel:   make(chan interface{}),
	}

	m.mu.Lock()
	m.listeners = append(m.listeners, &listener)
	m.mu.Unlock()

	go func() {
		for {
			msg := <-listener.channel
			callback(msg)
		}
	}()
}

func (m *Manager) EmitEvent(eventType Type, msg interface{}) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.listeners) == 0 {
		zap.L().Debug("EventManager: No event listeners available")
	}

	for _, listener := range m.listeners {
		if listener.eventType == eventType {
			zap.L().With(zap.String("type", string(eventType))).Debug("EventManager: Emitting event")
			go func(handler chan interface{}) {
				handler <- msg
			}(listener.channel)
		}
	}
}
