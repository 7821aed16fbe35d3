package report

import "github.com/rs/zerolog"

// LogSink renders events through a zerolog logger.
type LogSink struct {
	log zerolog.Logger
}

// NewLogSink returns a Sink backed by the given logger.
func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log}
}

// Emit implements Sink.
func (s *LogSink) Emit(e Event) {
	switch ev := e.(type) {
	case SessionStarted:
		s.log.Info().
			Str("sid", ev.SID).
			Int("nodes", ev.Nodes).
			Int("threshold", ev.Threshold).
			Str("scheme", ev.Scheme).
			Str("shareField", ev.ShareField).
			Str("keyField", ev.KeyField).
			Msg("session started")
	case PhaseStarted:
		s.log.Info().Str("phase", ev.Name).Msg("phase started")
	case PolynomialGenerated:
		s.log.Debug().
			Uint32("node", uint32(ev.Node)).
			Int("coefficients", ev.Coefficients).
			Msg("polynomial generated")
	case CommitmentsComputed:
		s.log.Debug().
			Uint32("node", uint32(ev.Node)).
			Int("commitments", ev.Commitments).
			Msg("commitments computed")
	case CommitmentsBroadcast:
		s.log.Info().Int("nodes", ev.Nodes).Msg("commitments broadcast")
	case SharesCreated:
		s.log.Debug().
			Uint32("node", uint32(ev.Node)).
			Int("count", ev.Count).
			Strs("values", ev.Values).
			Msg("shares created")
	case SharesDistributed:
		s.log.Info().Int("deliveries", ev.Deliveries).Msg("shares distributed")
	case SharesVerified:
		s.log.Debug().
			Uint32("node", uint32(ev.Node)).
			Bool("valid", ev.Valid).
			Msg("shares verified")
	case SecretShareComputed:
		s.log.Info().
			Uint32("node", uint32(ev.Node)).
			Str("share", ev.Share).
			Msg("secret share computed")
	case GroupKeyComputed:
		s.log.Info().
			Uint32("node", uint32(ev.Node)).
			Str("key", ev.Key).
			Msg("group key computed")
	case FieldMismatch:
		s.log.Warn().
			Str("shareField", ev.ShareField).
			Str("keyField", ev.KeyField).
			Msg("share and key field orders differ")
	case CheckCompleted:
		line := s.log.Info()
		switch ev.Status {
		case "WARNING":
			line = s.log.Warn()
		case "ERROR":
			line = s.log.Error()
		}
		line.Str("check", ev.Name).Str("detail", ev.Detail).Msg("check completed")
	case Summary:
		s.log.Info().
			Uint64("cycles", ev.Cycles).
			Dur("estimate", ev.Estimate).
			Msg("simulation complete")
	default:
		s.log.Info().Str("kind", e.Kind()).Msg("event")
	}
}
