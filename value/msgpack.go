package value

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ msgpack.CustomEncoder = Value{}
	_ msgpack.CustomDecoder = (*Value)(nil)
)

// EncodeMsgpack writes v as a two element array: kind and payload.
// Times are written in RFC 3339 form so the zone offset survives.
func (v Value) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	if err := enc.EncodeUint8(uint8(v.kind)); err != nil {
		return err
	}
	switch v.kind {
	case KindNull:
		return enc.EncodeNil()
	case KindText:
		return enc.EncodeString(v.s)
	case KindInt:
		return enc.EncodeInt(int64(v.n))
	case KindReal:
		f, _ := v.AsReal()
		return enc.EncodeFloat64(f)
	case KindBool:
		return enc.EncodeBool(v.n == 1)
	case KindIdentifier:
		return enc.EncodeString(v.id.String())
	case KindTime:
		return enc.EncodeString(v.t.Format(time.RFC3339Nano))
	default:
		return fmt.Errorf("value: encode unknown kind %d", v.kind)
	}
}

// DecodeMsgpack reads a value written by EncodeMsgpack.
func (v *Value) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n != 2 {
		return fmt.Errorf("value: decode: expected 2 elements, got %d", n)
	}
	k, err := dec.DecodeUint8()
	if err != nil {
		return err
	}
	switch Kind(k) {
	case KindNull:
		if err := dec.DecodeNil(); err != nil {
			return err
		}
		*v = Null()
	case KindText:
		s, err := dec.DecodeString()
		if err != nil {
			return err
		}
		*v = Text(s)
	case KindInt:
		i, err := dec.DecodeInt64()
		if err != nil {
			return err
		}
		*v = Int(i)
	case KindReal:
		f, err := dec.DecodeFloat64()
		if err != nil {
			return err
		}
		*v = Real(f)
	case KindBool:
		b, err := dec.DecodeBool()
		if err != nil {
			return err
		}
		*v = Bool(b)
	case KindIdentifier:
		s, err := dec.DecodeString()
		if err != nil {
			return err
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return fmt.Errorf("value: decode identifier: %w", err)
		}
		*v = Identifier(id)
	case KindTime:
		s, err := dec.DecodeString()
		if err != nil {
			return err
		}
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return fmt.Errorf("value: decode time: %w", err)
		}
		*v = Time(t)
	default:
		return fmt.Errorf("value: decode unknown kind %d", k)
	}
	return nil
}
