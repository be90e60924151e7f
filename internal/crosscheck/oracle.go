package crosscheck

import (
	"fmt"

	"github.com/dylhunn/dragontoothmg"
	nchess "github.com/notnil/chess"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Oracle is a reference legal move generator.
type Oracle interface {
	Name() string
	// LegalMoves returns the legal moves of the side to move in fen as
	// sorted, de-duplicated coordinate pairs such as "e2e4".
	LegalMoves(fen string) ([]string, error)
}

// ByName returns the oracle registered under name.
func ByName(name string) (Oracle, error) {
	switch name {
	case config.OracleDragontooth:
		return Dragontooth{}, nil
	case config.OracleNotnil:
		return Notnil{}, nil
	}
	return nil, fmt.Errorf("unknown oracle %q: %w", name, errors.ErrInvalidConfig)
}

// FromConfig builds the oracles named in cfg.
func FromConfig(cfg *config.VerifyConfig) ([]Oracle, error) {
	oracles := make([]Oracle, 0, len(cfg.Oracles))
	for _, name := range cfg.Oracles {
		o, err := ByName(name)
		if err != nil {
			return nil, err
		}
		oracles = append(oracles, o)
	}
	return oracles, nil
}

// Dragontooth wraps the dragontoothmg bitboard generator.
type Dragontooth struct{}

func (Dragontooth) Name() string { return config.OracleDragontooth }

func (Dragontooth) LegalMoves(fen string) ([]string, error) {
	board := dragontoothmg.ParseFen(fen)
	moves := board.GenerateLegalMoves()
	set := make(map[string]struct{}, len(moves))
	for i := range moves {
		set[fold(moves[i].String())] = struct{}{}
	}
	return sortedKeys(set), nil
}

// Notnil wraps the notnil/chess game model.
type Notnil struct{}

func (Notnil) Name() string { return config.OracleNotnil }

func (Notnil) LegalMoves(fen string) ([]string, error) {
	opt, err := nchess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("notnil rejected %q: %v: %w", fen, err, errors.ErrInvalidFEN)
	}
	game := nchess.NewGame(opt)
	set := make(map[string]struct{})
	for _, m := range game.ValidMoves() {
		set[m.S1().String()+m.S2().String()] = struct{}{}
	}
	return sortedKeys(set), nil
}

// fold drops a promotion suffix so "e7e8q" and "e7e8n" compare as "e7e8".
func fold(uci string) string {
	if len(uci) > 4 {
		return uci[:4]
	}
	return uci
}

func sortedKeys(set map[string]struct{}) []string {
	keys := maps.Keys(set)
	slices.Sort(keys)
	return keys
}
