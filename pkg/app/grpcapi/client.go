package grpcapi

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	apperrors "github.com/chainsafe/aa-bridge-middleware/pkg/app/errors"
	"github.com/chainsafe/aa-bridge-middleware/pkg/bridge"
	"github.com/chainsafe/aa-bridge-middleware/pkg/types"
)

// Client calls the Settlement service of a remote api-server.
type Client struct {
	cc grpc.ClientConnInterface
}

// NewClient wraps an established connection.
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

// SubmitMint submits a signed mint request to bridgeAddr.
func (c *Client) SubmitMint(ctx context.Context, bridgeAddr types.Address, req bridge.MintRequest) (*bridge.MintRecord, error) {
	in, err := MintRequestToStruct(bridgeAddr, req)
	if err != nil {
		return nil, err
	}
	out := new(structpb.Struct)
	if err := c.invoke(ctx, "SubmitMint", in, out); err != nil {
		return nil, err
	}
	return MintRecordFromStruct(out)
}

// GetMintRecord fetches the mint record stored at addr.
func (c *Client) GetMintRecord(ctx context.Context, addr types.Address) (*bridge.MintRecord, error) {
	in, err := structpb.NewStruct(map[string]any{"address": addr.String()})
	if err != nil {
		return nil, err
	}
	out := new(structpb.Struct)
	if err := c.invoke(ctx, "GetMintRecord", in, out); err != nil {
		return nil, err
	}
	return MintRecordFromStruct(out)
}

// GetValidators fetches the ordered validator list and threshold of bridgeAddr.
func (c *Client) GetValidators(ctx context.Context, bridgeAddr types.Address) ([]types.Address, uint32, error) {
	in, err := structpb.NewStruct(map[string]any{"bridge": bridgeAddr.String()})
	if err != nil {
		return nil, 0, err
	}
	out := new(structpb.Struct)
	if err := c.invoke(ctx, "GetValidators", in, out); err != nil {
		return nil, 0, err
	}
	return ValidatorSetFromStruct(out)
}

// invoke calls method and reports failures as dependency errors. The gRPC
// status stays reachable through errors.As and status.Code.
func (c *Client) invoke(ctx context.Context, method string, in, out *structpb.Struct) error {
	if err := c.cc.Invoke(ctx, "/"+ServiceName+"/"+method, in, out); err != nil {
		return apperrors.DependencyError(err, "settlement "+method+" failed")
	}
	return nil
}
