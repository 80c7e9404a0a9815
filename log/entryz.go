package log

import (
	"fmt"
	"time"

	"gopkg.in/Sirupsen/logrus.v0"
)

// An EntryZ accumulates typed fields into a fixed buffer before emission.
// A nil *EntryZ (disabled module/level) is valid: every method is a no-op,
// so call sites never need to guard.
type EntryZ struct {
	mod   Module
	lvl   Level
	msg   string
	zfbuf [8]ZField
	zfidx int
}

func newEntryZ() *EntryZ {
	return &EntryZ{}
}

func (z *EntryZ) next() *ZField {
	if z == nil || z.zfidx >= len(z.zfbuf) {
		return nil
	}
	f := &z.zfbuf[z.zfidx]
	z.zfidx++
	return f
}

func (z *EntryZ) String(key, val string) *EntryZ {
	if f := z.next(); f != nil {
		f.Type, f.Key, f.String = FieldTypeString, key, val
	}
	return z
}

func (z *EntryZ) Int(key string, val int) *EntryZ {
	if f := z.next(); f != nil {
		f.Type, f.Key, f.Integer = FieldTypeInt, key, uint64(val)
	}
	return z
}

func (z *EntryZ) Uint64(key string, val uint64) *EntryZ {
	if f := z.next(); f != nil {
		f.Type, f.Key, f.Integer = FieldTypeUint, key, val
	}
	return z
}

func (z *EntryZ) Float(key string, val float64) *EntryZ {
	if f := z.next(); f != nil {
		f.Type, f.Key, f.Float = FieldTypeFloat, key, val
	}
	return z
}

func (z *EntryZ) Bool(key string, val bool) *EntryZ {
	if f := z.next(); f != nil {
		f.Type, f.Key, f.Boolean = FieldTypeBool, key, val
	}
	return z
}

func (z *EntryZ) Error(key string, err error) *EntryZ {
	if f := z.next(); f != nil {
		f.Type, f.Key, f.Error = FieldTypeError, key, err
	}
	return z
}

func (z *EntryZ) Duration(key string, d time.Duration) *EntryZ {
	if f := z.next(); f != nil {
		f.Type, f.Key, f.Duration = FieldTypeDuration, key, d
	}
	return z
}

func (z *EntryZ) Stringer(key string, val fmt.Stringer) *EntryZ {
	if f := z.next(); f != nil {
		f.Type, f.Key, f.Interface = FieldTypeStringer, key, val
	}
	return z
}

// End emits the entry. Must be the last call on the builder chain.
func (z *EntryZ) End() {
	if z == nil {
		return
	}

	fields := make(logrus.Fields, z.zfidx+1)
	fields["_mod"] = modNames[z.mod]
	for i := range z.zfbuf[:z.zfidx] {
		fields[z.zfbuf[i].Key] = z.zfbuf[i].Value()
	}

	e := logrus.StandardLogger().WithFields(fields)
	switch z.lvl {
	case DebugLevel:
		e.Debug(z.msg)
	case InfoLevel:
		e.Info(z.msg)
	case WarnLevel:
		e.Warn(z.msg)
	case ErrorLevel:
		e.Error(z.msg)
	case FatalLevel:
		e.Fatal(z.msg)
	case PanicLevel:
		e.Panic(z.msg)
	}
}
