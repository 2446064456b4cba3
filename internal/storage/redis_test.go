package storage

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/land-marketplace/internal/model"
)

// memRedis answers GET and SET from a map so the client never dials.
type memRedis struct {
	mu   sync.Mutex
	data map[string]string
	err  error
}

func (m *memRedis) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		return nil, errors.New("dial disabled in tests")
	}
}

func (m *memRedis) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		m.mu.Lock()
		defer m.mu.Unlock()
		if m.err != nil {
			cmd.SetErr(m.err)
			return m.err
		}
		args := cmd.Args()
		switch c := cmd.(type) {
		case *redis.StringCmd:
			v, ok := m.data[fmt.Sprint(args[1])]
			if !ok {
				c.SetErr(redis.Nil)
				return redis.Nil
			}
			c.SetVal(v)
		case *redis.StatusCmd:
			switch v := args[2].(type) {
			case []byte:
				m.data[fmt.Sprint(args[1])] = string(v)
			default:
				m.data[fmt.Sprint(args[1])] = fmt.Sprint(v)
			}
			c.SetVal("OK")
		default:
			err := fmt.Errorf("unexpected command %s", cmd.Name())
			cmd.SetErr(err)
			return err
		}
		return nil
	}
}

func (m *memRedis) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		return errors.New("pipelines not supported")
	}
}

func newMemRedis(t *testing.T) (*redis.Client, *memRedis) {
	t.Helper()
	mem := &memRedis{data: map[string]string{}}
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:0"})
	rdb.AddHook(mem)
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb, mem
}

func TestRedisStorageMissingKeyIsNoSnapshot(t *testing.T) {
	rdb, _ := newMemRedis(t)
	_, err := NewRedisStorage(rdb, "").Load(context.Background())
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestRedisStorageSaveLoad(t *testing.T) {
	ctx := context.Background()
	rdb, mem := newMemRedis(t)
	st := NewRedisStorage(rdb, "")

	in := []model.Listing{sampleListing()}
	require.NoError(t, st.Save(ctx, in))

	raw, ok := mem.data[DefaultKey]
	require.True(t, ok, "empty key falls back to the default key")
	assert.Contains(t, raw, `"version":1`)

	out, err := st.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestRedisStorageLegacyAndCorruptPayloads(t *testing.T) {
	ctx := context.Background()
	rdb, mem := newMemRedis(t)
	st := NewRedisStorage(rdb, "listings")

	mem.data["listings"] = `[{"id":"1","title":"Plot","price":1500000,"type":"residential","availability":"available","createdAt":"2024-01-15T10:00:00Z"}]`
	out, err := st.Load(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "1", out[0].ID)

	mem.data["listings"] = "{not json"
	_, err = st.Load(ctx)
	assert.ErrorIs(t, err, ErrCorruptSnapshot)
}

func TestRedisStorageBackendErrors(t *testing.T) {
	ctx := context.Background()
	rdb, mem := newMemRedis(t)
	st := NewRedisStorage(rdb, "listings")
	mem.err = errors.New("connection refused")

	_, err := st.Load(ctx)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoSnapshot)
	assert.Contains(t, err.Error(), "redis get listings")

	err = st.Save(ctx, []model.Listing{sampleListing()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis set listings")
}
