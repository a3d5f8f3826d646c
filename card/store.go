package card

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/syssam/cardorm"
	"github.com/syssam/cardorm/dialect"
	"github.com/syssam/cardorm/schema"
	"github.com/syssam/cardorm/value"
)

// FilesTable is the table counted by FilesCount.
const FilesTable = "Files"

// GetValueFromRecordOrStore returns the value of key from r when it was
// explicitly assigned there. Otherwise it reads the stored value with one
// scalar query in a session acquired from scope. A missing row reads as null.
func GetValueFromRecordOrStore[K schema.Key[K]](ctx context.Context, r Record, key K, scope dialect.Scope) (value.Value, error) {
	return ValueFromRecordOrStore(ctx, r, schema.NameOf[K](), string(key), scope)
}

// ValueFromRecordOrStore is GetValueFromRecordOrStore for a section and key
// known only at run time. Both must be valid identifiers.
func ValueFromRecordOrStore(ctx context.Context, r Record, section, key string, scope dialect.Scope) (value.Value, error) {
	if s, ok := r.Section(section); ok {
		if v, ok := s.Raw(key); ok {
			return v, nil
		}
	}
	if !schema.IsValidIdentifier(section) || !schema.IsValidIdentifier(key) {
		return value.Null(), cardorm.NewValidationError(section+"."+key, errors.New("invalid identifier"))
	}
	x, err := scalar(ctx, scope, fmt.Sprintf("SELECT %s FROM %s WHERE ID=@ID", key, section), r.ID())
	if err != nil {
		return value.Null(), cardorm.NewQueryError(section, "scalar", err)
	}
	v, err := value.FromAny(x)
	if err != nil {
		return value.Null(), cardorm.NewQueryError(section, "scalar", err)
	}
	return v, nil
}

// FilesCount returns the number of files attached to the record id.
func FilesCount(ctx context.Context, id uuid.UUID, scope dialect.Scope) (int64, error) {
	x, err := scalar(ctx, scope, "SELECT COUNT(*) FROM "+FilesTable+" WHERE ID=@ID", id)
	if err != nil {
		return 0, cardorm.NewQueryError(FilesTable, "count", err)
	}
	v, err := value.FromAny(x)
	if err != nil {
		return 0, cardorm.NewQueryError(FilesTable, "count", err)
	}
	switch v.Kind() {
	case value.KindNull:
		return 0, nil
	case value.KindInt:
		n, _ := v.AsInt()
		return n, nil
	case value.KindText:
		s, _ := v.AsText()
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, cardorm.NewQueryError(FilesTable, "count", fmt.Errorf("%w: count %q", cardorm.ErrUnsupportedValue, s))
		}
		return n, nil
	default:
		return 0, cardorm.NewQueryError(FilesTable, "count", fmt.Errorf("%w: count is %s", cardorm.ErrUnsupportedValue, v.Kind()))
	}
}

// scalar runs query in a fresh session and releases it before returning.
func scalar(ctx context.Context, scope dialect.Scope, query string, id uuid.UUID) (_ any, rerr error) {
	sess, err := scope.Create(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := sess.Close(); err != nil {
			rerr = errors.Join(rerr, err)
		}
	}()
	return sess.Scalar(ctx, query, []any{sql.Named("ID", id)})
}
