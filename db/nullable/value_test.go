package nullable

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValueScan(t *testing.T) {
	var s Value[string]
	assert.NoError(t, s.Scan("mango"))
	assert.True(t, s.Valid)
	assert.Equal(t, "mango", s.V)

	assert.NoError(t, s.Scan(nil))
	assert.True(t, s.IsNull())
	assert.Equal(t, "", s.V)

	// mysql驱动返回[]byte
	assert.NoError(t, s.Scan([]byte("how")))
	assert.Equal(t, "how", s.V)

	var n Value[int32]
	assert.NoError(t, n.Scan(int64(42)))
	assert.Equal(t, int32(42), n.V)

	var tm Value[time.Time]
	assert.Error(t, tm.Scan("2024-01-01"))
}

func TestValueValue(t *testing.T) {
	v := ValueFrom(int64(7))
	dv, err := v.Value()
	assert.NoError(t, err)
	assert.Equal(t, int64(7), dv)

	var null Value[int64]
	dv, err = null.Value()
	assert.NoError(t, err)
	assert.Nil(t, dv)
}

func TestValueJSON(t *testing.T) {
	type payload struct {
		Email Value[string] `json:"email"`
	}

	data, err := json.Marshal(payload{Email: ValueFrom("a@b.com")})
	assert.NoError(t, err)
	assert.JSONEq(t, `{"email":"a@b.com"}`, string(data))

	data, err = json.Marshal(payload{})
	assert.NoError(t, err)
	assert.JSONEq(t, `{"email":null}`, string(data))

	var p payload
	assert.NoError(t, json.Unmarshal([]byte(`{"email":"c@d.com"}`), &p))
	assert.True(t, p.Email.Valid)
	assert.Equal(t, "c@d.com", p.Email.V)

	assert.NoError(t, json.Unmarshal([]byte(`{"email":null}`), &p))
	assert.True(t, p.Email.IsNull())
}

func TestValueFromPtr(t *testing.T) {
	s := "mango"
	v := ValueFromPtr(&s)
	assert.True(t, v.Valid)
	assert.Equal(t, "mango", v.V)

	v = ValueFromPtr[string](nil)
	assert.True(t, v.IsNull())
	assert.Nil(t, v.Ptr())
}

func TestValueGetOrElse(t *testing.T) {
	var v Value[int]
	assert.Equal(t, 10, v.GetOrElse(10))

	v = ValueFrom(3)
	assert.Equal(t, 3, v.GetOrElse(10))
}

func TestValueString(t *testing.T) {
	var null Value[string]
	assert.Equal(t, "<nil>", null.String())

	i := ValueFrom(42)
	assert.Equal(t, "42", i.String())

	f := ValueFrom(3.14)
	assert.Equal(t, "3.14", f.String())

	b := ValueFrom(true)
	assert.Equal(t, "true", b.String())

	tm := ValueFrom(time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC))
	assert.Equal(t, "2024-05-01 12:30:00", tm.String())
}
