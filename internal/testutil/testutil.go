package testutil

import "github.com/pkg/errors"

// github.com/pkg/errors の errors.Is に nil 同士の比較も扱えるようにしたもの
// 第一引数に gotErr
// 第二引数に wantErr が期待されている
func ErrorsIs(err error, target error) bool {
	if err == nil || target == nil {
		return err == nil && target == nil
	}
	return errors.Is(err, target)
}
