package discovery

import (
	"context"
	"strings"

	"github.com/oggyb/radar-match/internal/app"
	"github.com/oggyb/radar-match/internal/auth"
	svcErr "github.com/oggyb/radar-match/internal/errors"
	pb "github.com/oggyb/radar-match/internal/proto/discovery"
	"github.com/oggyb/radar-match/internal/repository"
	"github.com/oggyb/radar-match/internal/service/chatrequest"
	"github.com/oggyb/radar-match/internal/service/compat"
	"github.com/oggyb/radar-match/internal/service/match"
	"github.com/oggyb/radar-match/internal/service/quota"
	"github.com/oggyb/radar-match/internal/service/radar"
	"github.com/oggyb/radar-match/internal/service/swipe"
)

// Service implements the Discovery gRPC API on top of the core services.
// Each method validates who is acting, delegates, and maps errors to
// gRPC status codes. Each method corresponds to an RPC in discovery.proto.
type Service struct {
	appCtx     *app.AppContext
	tracker    *quota.Tracker
	scanner    *radar.Scanner
	reconciler *match.Reconciler
	ledger     *swipe.Ledger
	handshake  *chatrequest.Handshake
	compat     *compat.Checker

	pb.UnimplementedDiscoveryServer
}

// NewService wires the core services from AppContext.
func NewService(appCtx *app.AppContext) *Service {
	cfg := appCtx.Config
	stores := appCtx.Stores
	log := appCtx.Logger

	tracker := quota.NewTracker(stores.Quota, quota.Config{
		Window:      cfg.Quota.Window,
		DefaultTier: cfg.Quota.DefaultTier,
		Limits:      cfg.Quota.Limits,
	}, log, appCtx.Now)

	reconciler := match.NewReconciler(match.Dependencies{
		Matches:  stores.Matches,
		Profiles: stores.Profiles,
		Events:   appCtx.Events,
		Logger:   log,
		Now:      appCtx.Now,
	})

	return &Service{
		appCtx:     appCtx,
		tracker:    tracker,
		reconciler: reconciler,
		scanner: radar.NewScanner(radar.Dependencies{
			Locations:  stores.Locations,
			Activities: stores.Activities,
			Profiles:   stores.Profiles,
			Visibility: stores.Visibility,
			Quota:      tracker,
			Guard:      appCtx.Guard,
			Logger:     log,
			Now:        appCtx.Now,
		}, radar.Config{
			DefaultRadiusKm: cfg.Radar.DefaultRadiusKm,
			MaxRadiusKm:     cfg.Radar.MaxRadiusKm,
			MaxUsers:        cfg.Radar.MaxUsers,
			MaxActivities:   cfg.Radar.MaxActivities,
			Recency:         cfg.Radar.Recency,
			EarthRadiusKm:   cfg.Radar.EarthRadiusKm,
		}),
		ledger: swipe.NewLedger(swipe.Dependencies{
			Swipes:     stores.Swipes,
			Reconciler: reconciler,
			Guard:      appCtx.Guard,
			Logger:     log,
			Now:        appCtx.Now,
		}),
		handshake: chatrequest.NewHandshake(chatrequest.Dependencies{
			Requests:   stores.ChatRequests,
			Profiles:   stores.Profiles,
			Reconciler: reconciler,
			Guard:      appCtx.Guard,
			Logger:     log,
			Now:        appCtx.Now,
		}),
		compat: compat.NewChecker(stores.Profiles, tracker, appCtx.AI, log),
	}
}

// Scan runs a radar scan for the caller.
func (s *Service) Scan(ctx context.Context, req *pb.ScanRequest) (*pb.ScanResponse, error) {
	s.appCtx.Logger.Debug("Scan called", "user_id", req.GetUserId(), "radius_km", req.GetRadiusKm())

	userID, err := actingUser(ctx, req.GetUserId())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	res, err := s.scanner.Scan(ctx, radar.Request{
		UserID:   userID,
		Lat:      req.Lat,
		Lng:      req.Lng,
		RadiusKm: req.GetRadiusKm(),
		Tier:     tierFor(ctx, req.GetTier()),
	})
	if err != nil {
		return nil, svcErr.Map(err)
	}

	resp := &pb.ScanResponse{
		Users:      make([]*pb.NearbyUser, 0, len(res.Users)),
		Activities: make([]*pb.NearbyActivity, 0, len(res.Activities)),
		RadiusKm:   res.RadiusKm,
		ScansUsed:  int32(res.ScansUsed),
		ScansLimit: int32(res.ScansLimit),
	}
	for i := range res.Users {
		u := &res.Users[i]
		resp.Users = append(resp.Users, &pb.NearbyUser{
			Profile:        toProfile(&u.Profile),
			DistanceKm:     u.DistanceKm,
			LastSeenUnixMs: u.LastSeenAt.UnixMilli(),
		})
	}
	for _, a := range res.Activities {
		resp.Activities = append(resp.Activities, &pb.NearbyActivity{
			Id:             a.Activity.ID,
			HostId:         a.Activity.HostID,
			Title:          a.Activity.Title,
			Category:       a.Activity.Category,
			Lat:            a.Activity.Lat,
			Lng:            a.Activity.Lng,
			StartsAtUnixMs: a.Activity.StartsAt.UnixMilli(),
			DistanceKm:     a.DistanceKm,
		})
	}
	return resp, nil
}

// RecordSwipe stores a swipe and reports the match it completed, if any.
func (s *Service) RecordSwipe(ctx context.Context, req *pb.RecordSwipeRequest) (*pb.RecordSwipeResponse, error) {
	s.appCtx.Logger.Debug("RecordSwipe called", "swiper", req.GetSwiperId(), "swiped", req.GetSwipedId(), "direction", req.GetDirection())

	swiperID, err := actingUser(ctx, req.GetSwiperId())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	res, err := s.ledger.Record(ctx, swiperID, req.GetSwipedId(), req.GetDirection())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.RecordSwipeResponse{Success: true, Match: toMatch(res.Match)}, nil
}

// ListMatches pages through the caller's matches, newest first.
func (s *Service) ListMatches(ctx context.Context, req *pb.ListMatchesRequest) (*pb.ListMatchesResponse, error) {
	userID, err := actingUser(ctx, req.GetUserId())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	views, next, err := s.reconciler.List(ctx, userID, req.PageToken, int(req.GetLimit()))
	if err != nil {
		return nil, svcErr.Map(err)
	}

	resp := &pb.ListMatchesResponse{Matches: make([]*pb.Match, 0, len(views)), NextPageToken: next}
	for i := range views {
		resp.Matches = append(resp.Matches, toMatch(&views[i]))
	}
	return resp, nil
}

func (s *Service) SendChatRequest(ctx context.Context, req *pb.SendChatRequestRequest) (*pb.SendChatRequestResponse, error) {
	s.appCtx.Logger.Debug("SendChatRequest called", "sender", req.GetSenderId(), "receiver", req.GetReceiverId())

	senderID, err := actingUser(ctx, req.GetSenderId())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	res, err := s.handshake.Send(ctx, senderID, req.GetReceiverId(), req.GetMessage())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.SendChatRequestResponse{
		RequestId:        res.RequestID,
		Outcome:          res.Outcome,
		AlreadyRequested: res.Outcome == chatrequest.OutcomeAlreadyRequested,
		AlreadyConnected: res.Outcome == chatrequest.OutcomeAlreadyConnected,
	}, nil
}

func (s *Service) RespondChatRequest(ctx context.Context, req *pb.RespondChatRequestRequest) (*pb.RespondChatRequestResponse, error) {
	s.appCtx.Logger.Debug("RespondChatRequest called", "request_id", req.GetRequestId(), "responder", req.GetResponderId(), "action", req.GetAction())

	responderID, err := actingUser(ctx, req.GetResponderId())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	res, err := s.handshake.Respond(ctx, req.GetRequestId(), responderID, req.GetAction())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.RespondChatRequestResponse{Success: true, Status: res.Status, Match: toMatch(res.Match)}, nil
}

func (s *Service) ListIncomingChatRequests(ctx context.Context, req *pb.ListIncomingChatRequestsRequest) (*pb.ListIncomingChatRequestsResponse, error) {
	userID, err := actingUser(ctx, req.GetUserId())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	incoming, err := s.handshake.ListIncoming(ctx, userID, int(req.GetLimit()))
	if err != nil {
		return nil, svcErr.Map(err)
	}

	resp := &pb.ListIncomingChatRequestsResponse{Requests: make([]*pb.ChatRequest, 0, len(incoming))}
	for _, in := range incoming {
		resp.Requests = append(resp.Requests, &pb.ChatRequest{
			Id:              in.Request.ID,
			SenderId:        in.Request.SenderID,
			ReceiverId:      in.Request.ReceiverID,
			Message:         in.Request.Message,
			Status:          in.Request.Status,
			CreatedAtUnixMs: in.Request.CreatedAt.UnixMilli(),
			Sender:          toProfile(in.Sender),
		})
	}
	return resp, nil
}

func (s *Service) CheckCompatibility(ctx context.Context, req *pb.CheckCompatibilityRequest) (*pb.CheckCompatibilityResponse, error) {
	s.appCtx.Logger.Debug("CheckCompatibility called", "user_id", req.GetUserId(), "target_id", req.GetTargetId())

	userID, err := actingUser(ctx, req.GetUserId())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	res, err := s.compat.Check(ctx, userID, req.GetTargetId(), tierFor(ctx, req.GetTier()))
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.CheckCompatibilityResponse{
		Score:       int32(res.Score),
		Summary:     res.Summary,
		ChecksUsed:  int32(res.ChecksUsed),
		ChecksLimit: int32(res.ChecksLimit),
	}, nil
}

// GetUsage reports the caller's quota counters for every operation.
func (s *Service) GetUsage(ctx context.Context, req *pb.GetUsageRequest) (*pb.GetUsageResponse, error) {
	userID, err := actingUser(ctx, req.GetUserId())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	if userID == "" {
		return nil, svcErr.Map(svcErr.InvalidInput("user_id is required"))
	}
	usage, err := s.tracker.Usage(ctx, userID, tierFor(ctx, req.GetTier()))
	if err != nil {
		return nil, svcErr.Map(err)
	}

	resp := &pb.GetUsageResponse{Counters: make([]*pb.UsageCounter, 0, len(usage))}
	for _, u := range usage {
		c := &pb.UsageCounter{
			Operation: u.Operation,
			Tier:      u.Tier,
			Used:      int32(u.Used),
			Limit:     int32(u.Limit),
			Unlimited: u.Unlimited(),
		}
		// zero means no window has started yet
		if !u.WindowStartedAt.IsZero() {
			c.WindowStartedAtUnixMs = u.WindowStartedAt.UnixMilli()
			c.ResetsAtUnixMs = u.ResetsAt.UnixMilli()
		}
		resp.Counters = append(resp.Counters, c)
	}
	return resp, nil
}

func toMatch(v *match.View) *pb.Match {
	if v == nil {
		return nil
	}
	return &pb.Match{
		Id:              v.ID,
		UserAId:         v.UserAID,
		UserBId:         v.UserBID,
		CreatedAtUnixMs: v.CreatedAt.UnixMilli(),
		MatchedUser:     toProfile(v.MatchedUser),
	}
}

func toProfile(p *repository.ProfileSummary) *pb.ProfileSummary {
	if p == nil {
		return nil
	}
	return &pb.ProfileSummary{
		UserId:    p.UserID,
		Name:      p.Name,
		Age:       int32(p.Age),
		Bio:       p.Bio,
		Photos:    p.Photos,
		Interests: p.Interests,
		Location:  p.Location,
		Verified:  p.Verified,
		Badge:     p.Badge,
	}
}

// actingUser resolves the user a request acts as. With an authenticated
// caller, the claimed id must be empty or equal to the caller.
func actingUser(ctx context.Context, claimed string) (string, error) {
	claimed = strings.TrimSpace(claimed)
	caller, ok := auth.CallerFrom(ctx)
	if !ok {
		return claimed, nil
	}
	if claimed == "" {
		return caller.UserID, nil
	}
	if claimed != caller.UserID {
		return "", svcErr.Forbidden("cannot act on behalf of another user")
	}
	return claimed, nil
}

// tierFor prefers the tier asserted by the caller's token.
func tierFor(ctx context.Context, requested string) string {
	if caller, ok := auth.CallerFrom(ctx); ok && caller.Tier != "" {
		return caller.Tier
	}
	return requested
}
