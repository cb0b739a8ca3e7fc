package discovery_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/reflection/grpc_reflection_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/oggyb/radar-match/internal/app"
	"github.com/oggyb/radar-match/internal/auth"
	"github.com/oggyb/radar-match/internal/cache"
	"github.com/oggyb/radar-match/internal/config"
	"github.com/oggyb/radar-match/internal/db"
	pb "github.com/oggyb/radar-match/internal/proto/discovery"
	"github.com/oggyb/radar-match/internal/server"
	"github.com/oggyb/radar-match/internal/service/discovery"
)

//
// Test helpers
//

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// seed inserts three nearby users around (40, -74) and one upcoming activity.
func seed(t *testing.T, gdb *gorm.DB) {
	t.Helper()
	require.NoError(t, gdb.Create(&[]db.Profile{
		{UserID: "alice", Name: "Alice", Age: 29},
		{UserID: "bob", Name: "Bob", Age: 31, Interests: []string{"climbing"}},
		{UserID: "carol", Name: "Carol", Age: 27},
	}).Error)
	require.NoError(t, gdb.Create(&[]db.UserLocation{
		{UserID: "bob", Lat: 40.05, Lng: -74.0, UpdatedAt: fixedNow.Add(-time.Hour)},
		{UserID: "carol", Lat: 40.02, Lng: -74.0, UpdatedAt: fixedNow.Add(-time.Hour)},
	}).Error)
	require.NoError(t, gdb.Create(&db.Activity{
		ID: "act-1", HostID: "carol", Title: "Sunset run", Lat: 40.01, Lng: -74.0, StartsAt: fixedNow.Add(48 * time.Hour),
	}).Error)
}

// setupClient spins up an in-memory SQLite DB and a miniredis, wires an
// AppContext, serves Discovery over bufconn and returns a client.
func setupClient(t *testing.T, parser server.TokenParser) (pb.DiscoveryClient, *grpc.ClientConn) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, _ := gdb.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.Migrate(gdb))
	seed(t, gdb)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	cfg := &config.Config{}
	cfg.Redis.Addr = mr.Addr()
	cfg.Redis.ProfileTTL = time.Minute
	cfg.Quota.Store = "redis"
	cfg.Quota.Window = 24 * time.Hour
	cfg.Quota.DefaultTier = "starter"
	cfg.Quota.Limits = config.DefaultTierLimits()
	cfg.Placeholder.IDs = []string{"me", "undefined"}

	rdb := cache.NewRedisCache(cfg)
	t.Cleanup(func() { _ = rdb.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	appCtx := app.New(cfg, gdb, rdb, logger)
	appCtx.Now = func() time.Time { return fixedNow }

	lis := bufconn.Listen(1 << 20)
	srv := server.NewGRPCServer(logger, parser, discovery.NewRegistrar(appCtx))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return pb.NewDiscoveryClient(conn), conn
}

func f(v float64) *float64 { return &v }

func TestScanOverGRPC(t *testing.T) {
	ctx := context.Background()
	c, _ := setupClient(t, nil)

	req := &pb.ScanRequest{UserId: "alice", Lat: f(40.0), Lng: f(-74.0), RadiusKm: 10, Tier: "starter"}
	resp, err := c.Scan(ctx, req)
	require.NoError(t, err)
	require.Len(t, resp.Users, 2)
	assert.Equal(t, "carol", resp.Users[0].Profile.UserId)
	assert.Equal(t, "bob", resp.Users[1].Profile.UserId)
	assert.Equal(t, []string{"climbing"}, resp.Users[1].Profile.Interests)
	require.Len(t, resp.Activities, 1)
	assert.Equal(t, "act-1", resp.Activities[0].Id)
	assert.Equal(t, int32(1), resp.ScansUsed)
	assert.Equal(t, int32(2), resp.ScansLimit)

	_, err = c.Scan(ctx, req)
	require.NoError(t, err)

	_, err = c.Scan(ctx, req)
	st := status.Convert(err)
	require.Equal(t, codes.ResourceExhausted, st.Code())

	var info *errdetails.ErrorInfo
	for _, d := range st.Details() {
		if ei, ok := d.(*errdetails.ErrorInfo); ok {
			info = ei
		}
	}
	require.NotNil(t, info)
	assert.Equal(t, "2", info.Metadata["limit"])
	assert.Equal(t, "2", info.Metadata["used"])
	assert.Equal(t, "starter", info.Metadata["tier"])

	_, err = c.Scan(ctx, &pb.ScanRequest{UserId: "alice", Lng: f(-74.0)})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	usage, err := c.GetUsage(ctx, &pb.GetUsageRequest{UserId: "alice"})
	require.NoError(t, err)
	require.Len(t, usage.Counters, 2)
	for _, counter := range usage.Counters {
		switch counter.Operation {
		case config.OpRadarScan:
			assert.Equal(t, int32(2), counter.Used)
			assert.Equal(t, fixedNow.UnixMilli(), counter.WindowStartedAtUnixMs)
			assert.Equal(t, fixedNow.Add(24*time.Hour).UnixMilli(), counter.ResetsAtUnixMs)
		case config.OpCompatibilityCheck:
			assert.Equal(t, int32(0), counter.Used)
			assert.Zero(t, counter.ResetsAtUnixMs)
		}
	}
}

func TestSwipeAndChatRequestFlow(t *testing.T) {
	ctx := context.Background()
	c, _ := setupClient(t, nil)

	first, err := c.RecordSwipe(ctx, &pb.RecordSwipeRequest{SwiperId: "alice", SwipedId: "bob", Direction: "right"})
	require.NoError(t, err)
	assert.True(t, first.Success)
	assert.Nil(t, first.Match)

	second, err := c.RecordSwipe(ctx, &pb.RecordSwipeRequest{SwiperId: "bob", SwipedId: "alice", Direction: "right"})
	require.NoError(t, err)
	require.NotNil(t, second.Match)
	assert.Equal(t, "alice", second.Match.UserAId)
	require.NotNil(t, second.Match.MatchedUser)
	assert.Equal(t, "Alice", second.Match.MatchedUser.Name)

	_, err = c.RecordSwipe(ctx, &pb.RecordSwipeRequest{SwiperId: "alice", SwipedId: "me", Direction: "right"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	sent, err := c.SendChatRequest(ctx, &pb.SendChatRequestRequest{SenderId: "carol", ReceiverId: "alice", Message: "run with us?"})
	require.NoError(t, err)
	assert.Equal(t, "created", sent.Outcome)

	again, err := c.SendChatRequest(ctx, &pb.SendChatRequestRequest{SenderId: "carol", ReceiverId: "alice"})
	require.NoError(t, err)
	assert.True(t, again.AlreadyRequested)
	assert.Equal(t, sent.RequestId, again.RequestId)

	inbox, err := c.ListIncomingChatRequests(ctx, &pb.ListIncomingChatRequestsRequest{UserId: "alice"})
	require.NoError(t, err)
	require.Len(t, inbox.Requests, 1)
	require.NotNil(t, inbox.Requests[0].Sender)
	assert.Equal(t, "Carol", inbox.Requests[0].Sender.Name)

	_, err = c.RespondChatRequest(ctx, &pb.RespondChatRequestRequest{RequestId: sent.RequestId, ResponderId: "bob", Action: "accepted"})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	accepted, err := c.RespondChatRequest(ctx, &pb.RespondChatRequestRequest{RequestId: sent.RequestId, ResponderId: "alice", Action: "accepted"})
	require.NoError(t, err)
	assert.Equal(t, "accepted", accepted.Status)
	require.NotNil(t, accepted.Match)

	_, err = c.RespondChatRequest(ctx, &pb.RespondChatRequestRequest{RequestId: sent.RequestId, ResponderId: "alice", Action: "declined"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	matches, err := c.ListMatches(ctx, &pb.ListMatchesRequest{UserId: "alice", Limit: 10})
	require.NoError(t, err)
	assert.Len(t, matches.Matches, 2)
	assert.Nil(t, matches.NextPageToken)
}

func TestCompatibilityWithoutAIIsUnavailable(t *testing.T) {
	c, _ := setupClient(t, nil)
	_, err := c.CheckCompatibility(context.Background(), &pb.CheckCompatibilityRequest{UserId: "alice", TargetId: "bob"})
	assert.Equal(t, codes.Unavailable, status.Code(err))
}

func TestAuthenticatedCaller(t *testing.T) {
	jwtm := auth.NewJWTManager("test-secret", "")
	c, _ := setupClient(t, jwtm)

	_, err := c.GetUsage(context.Background(), &pb.GetUsageRequest{UserId: "alice"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	token, err := jwtm.Issue("alice", "explorer", time.Hour)
	require.NoError(t, err)
	ctx := metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer "+token)

	_, err = c.RecordSwipe(ctx, &pb.RecordSwipeRequest{SwiperId: "bob", SwipedId: "carol", Direction: "right"})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	// the acting user defaults to the caller and the token's tier wins
	usage, err := c.GetUsage(ctx, &pb.GetUsageRequest{Tier: "starter"})
	require.NoError(t, err)
	for _, counter := range usage.Counters {
		assert.Equal(t, "explorer", counter.Tier)
	}
}

func TestReflectionDescribesDiscovery(t *testing.T) {
	_, conn := setupClient(t, nil)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := grpc_reflection_v1.NewServerReflectionClient(conn).ServerReflectionInfo(ctx)
	require.NoError(t, err)
	require.NoError(t, stream.Send(&grpc_reflection_v1.ServerReflectionRequest{
		MessageRequest: &grpc_reflection_v1.ServerReflectionRequest_FileContainingSymbol{
			FileContainingSymbol: "discovery.v1.Discovery",
		},
	}))
	resp, err := stream.Recv()
	require.NoError(t, err)
	require.NoError(t, stream.CloseSend())

	files := resp.GetFileDescriptorResponse().GetFileDescriptorProto()
	require.NotEmpty(t, files)

	var fd descriptorpb.FileDescriptorProto
	require.NoError(t, proto.Unmarshal(files[0], &fd))
	assert.Equal(t, "discovery/v1/discovery.proto", fd.GetName())
	require.Len(t, fd.GetService(), 1)
	assert.Equal(t, "Discovery", fd.GetService()[0].GetName())
	assert.Len(t, fd.GetService()[0].GetMethod(), 8)
}
