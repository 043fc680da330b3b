package inbound

import (
	"context"

	"github.com/anshy0304/veggiefinder/internal/favorite/usecase"
	"github.com/anshy0304/veggiefinder/internal/pkg/router"
)

type uc interface {
	List(ctx context.Context) (*usecase.ListOutput, error)
	Add(ctx context.Context, in usecase.AddInput) (*usecase.AddOutput, error)
	Remove(ctx context.Context, in usecase.RemoveInput) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.GET("/api/v1/favorites", end.List)
	r.POST("/api/v1/favorites", end.Add)
	r.DELETE("/api/v1/favorites/:id", end.Remove)
}
