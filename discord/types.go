package discord

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/WelcomerTeam/Discord-Resources/wirejson"
	gotils_strconv "github.com/savsgio/gotils/strconv"
)

const (
	DiscordCreation = 1420070400000

	decimalBase = 10
	bitSize     = 64
)

var null = []byte("null")

// Placeholder type for easy identification.
type Snowflake int64

func (s *Snowflake) IsNil() bool {
	return *s == 0
}

// parseInt64 accepts both the quoted and bare integer encodings.
func parseInt64(b []byte) (int64, error) {
	if len(b) >= 2 && b[0] == '"' {
		b = b[1 : len(b)-1]
	}

	i, err := strconv.ParseInt(gotils_strconv.B2S(b), decimalBase, bitSize)
	if err != nil {
		return 0, fmt.Errorf("failed to unmarshal json: %w", err)
	}

	return i, nil
}

func toSnowflake(b []byte, s *Snowflake) error {
	if bytes.Equal(b, null) {
		*s = 0

		return nil
	}

	i, err := parseInt64(b)
	if err != nil {
		return err
	}

	*s = Snowflake(i)

	return nil
}

func (s *Snowflake) UnmarshalJSON(b []byte) error {
	return toSnowflake(b, s)
}

func (s Snowflake) MarshalJSON() ([]byte, error) {
	return int64ToStringBytes(int64(s)), nil
}

func (s Snowflake) String() string {
	return strconv.FormatInt(int64(s), decimalBase)
}

// Time returns the creation time of the Snowflake.
func (s Snowflake) Time() time.Time {
	nsec := (int64(s) >> 22) + DiscordCreation

	return time.Unix(0, nsec*1000000)
}

// ParseSnowflake parses a decimal snowflake string.
func ParseSnowflake(value string) (Snowflake, error) {
	i, err := strconv.ParseInt(value, decimalBase, bitSize)
	if err != nil {
		return 0, fmt.Errorf("invalid snowflake %q: %w", value, err)
	}

	return Snowflake(i), nil
}

// int64 to allow for marshalling support.
type Int64 int64

func (in *Int64) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, null) {
		return nil
	}

	i, err := parseInt64(b)
	if err != nil {
		return err
	}

	*in = Int64(i)

	return nil
}

func (in Int64) MarshalJSON() ([]byte, error) {
	return int64ToStringBytes(int64(in)), nil
}

func (in Int64) String() string {
	return strconv.FormatInt(int64(in), decimalBase)
}

func int64ToStringBytes(s int64) []byte {
	buf := make([]byte, 0, 24) // maxInt64JsonLength + 2

	buf = append(buf, '"')
	buf = strconv.AppendInt(buf, s, decimalBase)
	buf = append(buf, '"')

	return buf
}

type Timestamp string

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t == "" {
		return null, nil
	}

	return wirejson.Marshal(string(t))
}

// Time parses the timestamp, returning the zero time if it is empty or corrupt.
func (t Timestamp) Time() time.Time {
	parsed, err := time.Parse(time.RFC3339, string(t))
	if err != nil {
		return time.Time{}
	}

	return parsed
}

// List encodes a nil or empty slice as [] instead of null.
type List[T any] []T

func (l List[T]) MarshalJSON() ([]byte, error) {
	if len(l) == 0 {
		return []byte("[]"), nil
	}

	return wirejson.Marshal([]T(l))
}

// Nullable is a wire field that records whether it was omitted, explicitly null
// or carried a value. It is used for fields where null clears local state.
type Nullable[T any] struct {
	Value T
	Set   bool
	Null  bool
}

// NewNullable returns a Nullable holding value.
func NewNullable[T any](value T) Nullable[T] {
	return Nullable[T]{Value: value, Set: true}
}

// Null returns an explicitly null Nullable.
func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true, Null: true}
}

func (n *Nullable[T]) UnmarshalJSON(b []byte) error {
	var zero T

	n.Set = true

	if bytes.Equal(b, null) {
		n.Null = true
		n.Value = zero

		return nil
	}

	n.Null = false

	if err := wirejson.Unmarshal(b, &n.Value); err != nil {
		return fmt.Errorf("failed to unmarshal nullable: %w", err)
	}

	return nil
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Set || n.Null {
		return null, nil
	}

	return wirejson.Marshal(n.Value)
}

// IsZero reports whether the field was absent from the payload.
func (n Nullable[T]) IsZero() bool {
	return !n.Set
}
