package main

import (
	"errors"
	"fmt"

	"github.com/zeromicro/go-zero/core/logx"

	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/file"
	"github.com/HuXin0817/dots-and-boxes-engine/pkg/models/pusher"
)

var errBoardSize = errors.New("board width and height must be positive")

// recordLog batches game records into a JSON lines file. A recordLog without
// a path drops everything.
type recordLog struct {
	pusher *pusher.Pusher[fmt.Stringer]
}

func newRecordLog(path string) *recordLog {
	if path == "" {
		return &recordLog{}
	}

	p := pusher.NewPusher(
		pusher.WithPushLogic(func(lines ...fmt.Stringer) error {
			return file.AppendLines(path, lines...)
		}),
		pusher.WithErrorHandler[fmt.Stringer](func(err error) {
			logx.Errorf("write records to %s: %v", path, err)
		}),
	)
	p.Start()

	return &recordLog{pusher: p}
}

func (r *recordLog) Add(records ...fmt.Stringer) {
	if r.pusher != nil {
		r.pusher.AddMessages(records...)
	}
}

func (r *recordLog) Close() {
	if r.pusher != nil {
		r.pusher.Stop()
	}
}
