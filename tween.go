package main

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/zucenko/toxicgrid/model"
)

type attr int

const (
	attrPosition attr = iota
	attrScale
	attrOpacity
	attrStroke
	attrFill
	attrRemoval
)

type tweenKey struct {
	id   model.ElementID
	attr attr
}

// Action is what a running tween drives: a callback per update with the
// eased progress in [0,1] and hooks for when it ends.
type Action struct {
	key      tweenKey
	onChange func(float32)
	onFinish []func()
}

func (a *Action) addOnFinish(f func()) {
	if a.onFinish == nil {
		a.onFinish = make([]func(), 0)
	}
	a.onFinish = append(a.onFinish, f)
}

// Tweens keeps at most one tween per element attribute. Starting a new
// one interrupts the old one where it stands, without its finish hooks.
type Tweens struct {
	running map[*gween.Tween]*Action
	byKey   map[tweenKey]*gween.Tween
}

func NewTweens() *Tweens {
	return &Tweens{
		running: make(map[*gween.Tween]*Action),
		byKey:   make(map[tweenKey]*gween.Tween),
	}
}

func (t *Tweens) Start(key tweenKey, tr model.Transition, onChange func(float32)) *Action {
	t.cancel(key)
	easing := tr.Ease
	if easing == nil {
		easing = ease.Linear
	}
	tween := gween.New(0, 1, float32(tr.Duration.Seconds()), easing)
	action := &Action{key: key, onChange: onChange}
	t.running[tween] = action
	t.byKey[key] = tween
	return action
}

func (t *Tweens) cancel(key tweenKey) {
	if tween, found := t.byKey[key]; found {
		delete(t.running, tween)
		delete(t.byKey, key)
	}
}

// CancelElement drops every tween of an element.
func (t *Tweens) CancelElement(id model.ElementID) {
	for key := range t.byKey {
		if key.id == id {
			t.cancel(key)
		}
	}
}

func (t *Tweens) Len() int {
	return len(t.running)
}

// Update advances every tween by dt seconds. Finish hooks run after all
// tweens have been stepped, so they may start or cancel tweens freely.
func (t *Tweens) Update(dt float32) {
	finished := make([]*Action, 0)
	for tween, action := range t.running {
		curr, done := tween.Update(dt)
		if action.onChange != nil {
			action.onChange(curr)
		}
		if done {
			delete(t.running, tween)
			delete(t.byKey, action.key)
			finished = append(finished, action)
		}
	}
	for _, action := range finished {
		for _, onFinish := range action.onFinish {
			onFinish()
		}
	}
}
