package local

import (
	"sync"

	"gitlab.com/hanul-informatics/medsearch/lib/cache"
)

func New() cache.Store {
	return &local{
		store: make(map[string][]byte),
		mut:   &sync.RWMutex{},
	}
}

type local struct {
	store map[string][]byte
	mut   *sync.RWMutex
}

func (l *local) Get(key string) ([]byte, bool, error) {
	l.mut.RLock()
	defer l.mut.RUnlock()

	data, ok := l.store[key]
	if !ok {
		return nil, false, nil
	}

	return data, true, nil
}

func (l *local) Set(key string, data []byte) error {
	l.mut.Lock()
	defer l.mut.Unlock()

	l.store[key] = data
	return nil
}

func (l *local) Ready() bool {
	return true
}
