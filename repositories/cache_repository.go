package repositories

import (
	"encoding/json"
	"log"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/karlseguin/ccache/v3"

	"rental-api/domain"
)

// CacheRepository define la interfaz del caché de lecturas de propiedades
// Dos niveles: ccache local, Memcached compartido. El dueño de la verdad
// sigue siendo MySQL: acá solo viven copias con TTL corto
type CacheRepository interface {
	Get(key string) ([]domain.Property, bool)
	Set(key string, properties []domain.Property, ttl time.Duration)
	Delete(key string)
}

type cacheRepository struct {
	localCache      *ccache.Cache[[]domain.Property]
	memcachedClient *memcache.Client
}

// NewCacheRepository crea una nueva instancia del caché de dos niveles
func NewCacheRepository(memcachedHost string) CacheRepository {
	localCache := ccache.New(ccache.Configure[[]domain.Property]().MaxSize(1000))

	memcachedClient := memcache.New(memcachedHost)
	log.Printf("Cache repository initialized with Memcached at %s", memcachedHost)

	return &cacheRepository{
		localCache:      localCache,
		memcachedClient: memcachedClient,
	}
}

// Get obtiene propiedades del caché (primero local, luego Memcached)
func (r *cacheRepository) Get(key string) ([]domain.Property, bool) {
	// 1. Buscar en caché local primero
	item := r.localCache.Get(key)
	if item != nil && !item.Expired() {
		return item.Value(), true
	}

	// 2. Si no está en local, buscar en Memcached
	memcachedItem, err := r.memcachedClient.Get(key)
	if err != nil {
		if err != memcache.ErrCacheMiss {
			log.Printf("Error getting from Memcached: key=%s, error=%v", key, err)
		}
		return nil, false
	}

	var properties []domain.Property
	if err := json.Unmarshal(memcachedItem.Value, &properties); err != nil {
		log.Printf("Error unmarshaling cache data from Memcached: key=%s, error=%v", key, err)
		return nil, false
	}

	// 3. Guardar en caché local para próximas consultas
	r.localCache.Set(key, properties, 5*time.Minute)

	return properties, true
}

// Set guarda propiedades en ambos niveles de caché
func (r *cacheRepository) Set(key string, properties []domain.Property, ttl time.Duration) {
	// 1. Caché local con TTL de 5 minutos
	r.localCache.Set(key, properties, 5*time.Minute)

	// 2. Serializar a JSON para Memcached
	jsonData, err := json.Marshal(properties)
	if err != nil {
		log.Printf("Error marshaling cache data for Memcached: key=%s, error=%v", key, err)
		return
	}

	// 3. Memcached usa segundos
	memcachedItem := &memcache.Item{
		Key:        key,
		Value:      jsonData,
		Expiration: int32(ttl / time.Second),
	}

	if err := r.memcachedClient.Set(memcachedItem); err != nil {
		log.Printf("Error setting cache in Memcached: key=%s, error=%v", key, err)
	}
}

// Delete invalida una clave en ambos niveles
// Se llama en toda mutación que afecte propiedades: ediciones directas,
// cambios de estado por reservas y recálculos de rating por reseñas
func (r *cacheRepository) Delete(key string) {
	r.localCache.Delete(key)

	if err := r.memcachedClient.Delete(key); err != nil && err != memcache.ErrCacheMiss {
		log.Printf("Error deleting from Memcached: key=%s, error=%v", key, err)
	}
}
