package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/internal/application/alert"
)

var _ alert.Locker = (*Locker)(nil)

const keyPrefix = "lock:"

// releaseScript borra la llave solo si todavía guarda nuestro token; si el TTL venció
// y otra réplica tomó el candado, no se lo quitamos.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Locker candado con SET NX PX. El TTL acota cuánto queda tomado si el proceso muere.
type Locker struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewLocker(client *goredis.Client, ttl time.Duration) *Locker {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &Locker{client: client, ttl: ttl}
}

// TryLock intenta tomar el candado sin esperar.
func (l *Locker) TryLock(ctx context.Context, key string) (func(context.Context) error, bool, error) {
	token := uuid.New().String()
	ok, err := l.client.SetNX(ctx, keyPrefix+key, token, l.ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("redis lock %s: %w", key, err)
	}
	if !ok {
		return nil, false, nil
	}
	release := func(ctx context.Context) error {
		if err := releaseScript.Run(ctx, l.client, []string{keyPrefix + key}, token).Err(); err != nil {
			return fmt.Errorf("redis unlock %s: %w", key, err)
		}
		return nil
	}
	return release, true, nil
}
