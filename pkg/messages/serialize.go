package messages

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	snapshotfb "github.com/cbodonnell/pong/flatbuffers/snapshot"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
)

// EncodeFrame serializes the snapshot to a flatbuffer and compresses it with zstd.
func EncodeFrame(s *Snapshot) ([]byte, error) {
	b, err := SerializeSnapshot(s)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize snapshot: %v", err)
	}

	compressed := bytes.NewBuffer(nil)
	compWriter, err := zstd.NewWriter(compressed, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd writer: %v", err)
	}
	if _, err := compWriter.Write(b); err != nil {
		return nil, fmt.Errorf("failed to compress snapshot: %v", err)
	}
	if err := compWriter.Close(); err != nil {
		return nil, fmt.Errorf("failed to close zstd writer: %v", err)
	}

	return compressed.Bytes(), nil
}

// DecodeFrame reverses EncodeFrame.
func DecodeFrame(data []byte) (*Snapshot, error) {
	compReader, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %v", err)
	}
	defer compReader.Close()

	b, err := io.ReadAll(compReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read decompressed snapshot: %v", err)
	}

	snapshot, err := DeserializeSnapshot(b)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize snapshot: %v", err)
	}

	return snapshot, nil
}

// WriteFrame writes an encoded snapshot prefixed with its length as a big endian uint32.
func WriteFrame(w io.Writer, s *Snapshot) error {
	frame, err := EncodeFrame(s)
	if err != nil {
		return err
	}
	if err := binary.Write(w, binary.BigEndian, uint32(len(frame))); err != nil {
		return fmt.Errorf("failed to write frame length: %v", err)
	}
	if _, err := w.Write(frame); err != nil {
		return fmt.Errorf("failed to write frame: %v", err)
	}
	return nil
}

// ReadFrame reads one length prefixed frame. It returns io.EOF when r is exhausted
// at a frame boundary.
func ReadFrame(r io.Reader) (*Snapshot, error) {
	var size uint32
	if err := binary.Read(r, binary.BigEndian, &size); err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("failed to read frame length: %v", err)
	}
	if size > MaxFrameSize {
		return nil, fmt.Errorf("frame of %d bytes exceeds maximum of %d", size, MaxFrameSize)
	}
	frame := make([]byte, size)
	if _, err := io.ReadFull(r, frame); err != nil {
		return nil, fmt.Errorf("failed to read frame: %v", err)
	}
	return DecodeFrame(frame)
}

func SerializeSnapshot(s *Snapshot) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("snapshot is nil")
	}
	builder := flatbuffers.NewBuilder(256)
	snapshot := SerializeSnapshotFlatbuffer(builder, s)
	builder.Finish(snapshot)
	return builder.FinishedBytes(), nil
}

func DeserializeSnapshot(b []byte) (snapshot *Snapshot, err error) {
	// the generated accessors panic on truncated buffers
	defer func() {
		if r := recover(); r != nil {
			snapshot = nil
			err = fmt.Errorf("malformed snapshot: %v", r)
		}
	}()
	if len(b) < flatbuffers.SizeUOffsetT {
		return nil, fmt.Errorf("snapshot buffer too short: %d bytes", len(b))
	}
	return DeserializeSnapshotFlatbuffer(snapshotfb.GetRootAsSnapshot(b, 0))
}

func SerializeSnapshotFlatbuffer(builder *flatbuffers.Builder, s *Snapshot) flatbuffers.UOffsetT {
	paddleOffsets := make([]flatbuffers.UOffsetT, 0, len(s.Paddles))
	for _, p := range s.Paddles {
		position := serializeVec2(builder, p.Position.X, p.Position.Y)
		snapshotfb.PaddleStart(builder)
		snapshotfb.PaddleAddSide(builder, p.Side)
		snapshotfb.PaddleAddPosition(builder, position)
		paddleOffsets = append(paddleOffsets, snapshotfb.PaddleEnd(builder))
	}
	snapshotfb.SnapshotStartPaddlesVector(builder, len(paddleOffsets))
	for i := len(paddleOffsets) - 1; i >= 0; i-- {
		builder.PrependUOffsetT(paddleOffsets[i])
	}
	paddles := builder.EndVector(len(paddleOffsets))

	var ball flatbuffers.UOffsetT
	if s.Ball != nil {
		ball = serializeBall(builder, s.Ball)
	}

	snapshotfb.SnapshotStart(builder)
	snapshotfb.SnapshotAddTick(builder, s.Tick)
	snapshotfb.SnapshotAddTimestamp(builder, s.Timestamp)
	snapshotfb.SnapshotAddPlayState(builder, s.PlayState)
	snapshotfb.SnapshotAddScore1(builder, s.Score.Player1)
	snapshotfb.SnapshotAddScore2(builder, s.Score.Player2)
	snapshotfb.SnapshotAddLastScored(builder, s.LastScored)
	snapshotfb.SnapshotAddPaddles(builder, paddles)
	if s.Ball != nil {
		snapshotfb.SnapshotAddBall(builder, ball)
	}
	return snapshotfb.SnapshotEnd(builder)
}

func serializeBall(builder *flatbuffers.Builder, b *BallUpdate) flatbuffers.UOffsetT {
	rallyID := builder.CreateByteVector(b.RallyID[:])
	position := serializeVec2(builder, b.Position.X, b.Position.Y)
	direction := serializeVec2(builder, b.Direction.X, b.Direction.Y)

	snapshotfb.BallStart(builder)
	snapshotfb.BallAddGeneration(builder, b.Generation)
	snapshotfb.BallAddRallyId(builder, rallyID)
	snapshotfb.BallAddPosition(builder, position)
	snapshotfb.BallAddDirection(builder, direction)
	snapshotfb.BallAddSpeed(builder, b.Speed)
	snapshotfb.BallAddPendingRemoval(builder, b.PendingRemoval)
	return snapshotfb.BallEnd(builder)
}

func serializeVec2(builder *flatbuffers.Builder, x, y float64) flatbuffers.UOffsetT {
	snapshotfb.Vec2Start(builder)
	snapshotfb.Vec2AddX(builder, x)
	snapshotfb.Vec2AddY(builder, y)
	return snapshotfb.Vec2End(builder)
}

func DeserializeSnapshotFlatbuffer(fb *snapshotfb.Snapshot) (*Snapshot, error) {
	s := &Snapshot{
		Tick:       fb.Tick(),
		Timestamp:  fb.Timestamp(),
		PlayState:  fb.PlayState(),
		LastScored: fb.LastScored(),
		Score: ScoreUpdate{
			Player1: fb.Score1(),
			Player2: fb.Score2(),
		},
	}

	for i := 0; i < fb.PaddlesLength(); i++ {
		paddle := &snapshotfb.Paddle{}
		if !fb.Paddles(paddle, i) {
			return nil, fmt.Errorf("failed to get paddle at index %d", i)
		}
		update := PaddleUpdate{Side: paddle.Side()}
		if position := paddle.Position(nil); position != nil {
			update.Position.X = position.X()
			update.Position.Y = position.Y()
		}
		s.Paddles = append(s.Paddles, update)
	}

	if ball := fb.Ball(nil); ball != nil {
		update, err := deserializeBall(ball)
		if err != nil {
			return nil, err
		}
		s.Ball = update
	}

	return s, nil
}

func deserializeBall(fb *snapshotfb.Ball) (*BallUpdate, error) {
	b := &BallUpdate{
		Generation:     fb.Generation(),
		Speed:          fb.Speed(),
		PendingRemoval: fb.PendingRemoval(),
	}
	if raw := fb.RallyIdBytes(); len(raw) > 0 {
		rallyID, err := uuid.FromBytes(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse rally id: %v", err)
		}
		b.RallyID = rallyID
	}
	if position := fb.Position(nil); position != nil {
		b.Position.X = position.X()
		b.Position.Y = position.Y()
	}
	if direction := fb.Direction(nil); direction != nil {
		b.Direction.X = direction.X()
		b.Direction.Y = direction.Y()
	}
	return b, nil
}
