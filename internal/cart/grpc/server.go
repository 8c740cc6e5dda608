package grpc

import (
	"context"
	"errors"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"

	cartv1 "github.com/dwikikusuma/cartservice/api/gen/cart/v1"
	"github.com/dwikikusuma/cartservice/internal/cart/app"
	"github.com/dwikikusuma/cartservice/internal/cart/domain"
)

type Server struct {
	cartv1.UnimplementedCartServiceServer
	svc       *app.Service
	observers []app.CallObserver
}

func NewServer(svc *app.Service, observers ...app.CallObserver) *Server {
	return &Server{svc: svc, observers: observers}
}

func (s *Server) AddItem(ctx context.Context, req *cartv1.AddItemRequest) (_ *emptypb.Empty, err error) {
	defer s.observe(ctx, "AddItem", time.Now(), &err)

	var item *domain.CartItem
	if it := req.GetItem(); it != nil {
		item = &domain.CartItem{ProductID: it.GetProductId(), Quantity: it.GetQuantity()}
	}

	if err := s.svc.AddItem(ctx, req.GetUserId(), item); err != nil {
		return nil, err
	}
	return &emptypb.Empty{}, nil
}

func (s *Server) GetCart(ctx context.Context, req *cartv1.GetCartRequest) (_ *cartv1.Cart, err error) {
	defer s.observe(ctx, "GetCart", time.Now(), &err)

	cart, err := s.svc.GetCart(ctx, req.GetUserId())
	if err != nil {
		return nil, err
	}
	return toProto(cart), nil
}

func (s *Server) EmptyCart(ctx context.Context, req *cartv1.EmptyCartRequest) (_ *emptypb.Empty, err error) {
	defer s.observe(ctx, "EmptyCart", time.Now(), &err)

	if err := s.svc.EmptyCart(ctx, req.GetUserId()); err != nil {
		return nil, err
	}
	return &emptypb.Empty{}, nil
}

// observe replaces *errp with its sanitized status and then reports the
// call to every observer.
func (s *Server) observe(ctx context.Context, method string, start time.Time, errp *error) {
	cause := *errp
	if cause != nil {
		*errp = mapErr(cause)
	}

	call := app.Call{
		Method:   method,
		Outcome:  status.Code(*errp).String(),
		Duration: time.Since(start),
		Err:      cause,
	}
	for _, o := range s.observers {
		notify(ctx, o, call)
	}
}

func notify(ctx context.Context, o app.CallObserver, call app.Call) {
	defer func() { _ = recover() }()
	o.ObserveCall(ctx, call)
}

func toProto(cart domain.Cart) *cartv1.Cart {
	items := make([]*cartv1.CartItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, &cartv1.CartItem{
			ProductId: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	return &cartv1.Cart{
		UserId: cart.UserID,
		Items:  items,
	}
}

// mapErr never forwards the wrapped cause of a storage failure; it can carry
// addresses and driver messages.
func mapErr(err error) error {
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, app.ErrStorageUnavailable):
		return status.Error(codes.FailedPrecondition, "can't access cart storage")
	case errors.Is(err, app.ErrSerialization):
		return status.Error(codes.FailedPrecondition, "can't read cart from storage")
	}
	return status.Error(codes.Internal, "internal error")
}
