package client

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/84hero/cronos-devkit/pkg/transport"
)

// BlockService groups block query operations.
type BlockService struct {
	service
}

// ByTag returns the block identified by a tag ("latest", "earliest",
// "pending" or a numeric height). txDetail controls whether full transaction
// objects are included and is passed through as given. The block shape varies
// with txDetail, so the payload is raw JSON.
func (s *BlockService) ByTag(ctx context.Context, blockTag, txDetail string) (*transport.Response[json.RawMessage], error) {
	path, q, err := s.route("block", "block-tag")
	if err != nil {
		return nil, err
	}
	q.Set("blockTag", blockTag)
	q.Set("txDetail", txDetail)
	return transport.Do[json.RawMessage](ctx, s.http, transport.Request{
		Op:     "block.by-tag",
		Method: http.MethodGet,
		Path:   path,
		Query:  q,
	})
}
