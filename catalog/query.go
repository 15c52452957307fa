package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/crateful/wirecat/ir"
)

// Select returns the records for which the expression evaluates true.
// The expression sees each record as an environment with id, name, and
// a get(path) function returning the value at a path expression, or
// nil when the path is absent.
//
//	coll.Select(ctx, `name startsWith "lab-" and get("general/site/name") == "HQ"`)
//
// Records whose data cannot be fetched fail the whole query; a missing
// path inside get only yields nil.
func (c *Collection) Select(ctx context.Context, src string) ([]*Record, error) {
	prog, err := expr.Compile(src, expr.Env(map[string]any{
		"id":   0,
		"name": "",
		"get":  func(path string) any { return nil },
	}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", c.typ.Name, err)
	}
	recs, err := c.All(ctx)
	if err != nil {
		return nil, err
	}
	var res []*Record
	for _, rec := range recs {
		ok, err := c.selectOne(ctx, prog, rec)
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, rec)
		}
	}
	return res, nil
}

func (c *Collection) selectOne(ctx context.Context, prog *vm.Program, rec *Record) (bool, error) {
	var fetchErr error
	env := map[string]any{
		"id":   rec.id,
		"name": rec.name,
		"get": func(path string) any {
			v, err := rec.Get(ctx, path)
			if err != nil {
				if !errors.Is(err, ErrPathNotFound) {
					fetchErr = err
				}
				return nil
			}
			return ir.ToAny(v)
		},
	}
	out, err := expr.Run(prog, env)
	if fetchErr != nil {
		return false, fetchErr
	}
	if err != nil {
		return false, fmt.Errorf("select %s: %w", c.typ.Name, err)
	}
	ok, _ := out.(bool)
	return ok, nil
}
