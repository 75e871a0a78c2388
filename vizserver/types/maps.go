package types

import "sync"

type WatcherMap struct {
	data map[string]*Watcher
	lock *sync.RWMutex
}

func NewWatcherMap() *WatcherMap {
	return &WatcherMap{
		data: make(map[string]*Watcher),
		lock: &sync.RWMutex{},
	}
}

func (wmap *WatcherMap) Get(id string) *Watcher {
	wmap.lock.RLock()
	res := wmap.data[id]
	wmap.lock.RUnlock()

	return res
}

func (wmap *WatcherMap) Set(id string, watcher *Watcher) {
	wmap.lock.Lock()
	wmap.data[id] = watcher
	wmap.lock.Unlock()
}

func (wmap *WatcherMap) Remove(id string) {
	wmap.lock.Lock()
	delete(wmap.data, id)
	wmap.lock.Unlock()
}

func (wmap *WatcherMap) Size() int {
	wmap.lock.RLock()
	size := len(wmap.data)
	wmap.lock.RUnlock()

	return size
}

type VizSimMap struct {
	data map[string]*VizSim
	lock *sync.RWMutex
}

func NewVizSimMap() *VizSimMap {
	return &VizSimMap{
		data: make(map[string]*VizSim),
		lock: &sync.RWMutex{},
	}
}

func (smap *VizSimMap) Get(id string) *VizSim {
	smap.lock.RLock()
	res := smap.data[id]
	smap.lock.RUnlock()

	return res
}

func (smap *VizSimMap) Set(id string, sim *VizSim) {
	smap.lock.Lock()
	smap.data[id] = sim
	smap.lock.Unlock()
}

func (smap *VizSimMap) Each(cbk func(sim *VizSim)) {
	smap.lock.RLock()
	for _, sim := range smap.data {
		cbk(sim)
	}
	smap.lock.RUnlock()
}
