package config

type Config struct {
	System struct {
		IsProd                bool   `env:"PROD"`                      // 是否为生产环境
		Listen                string `env:"LISTEN" envDefault:":1323"` // 监听地址
		DBConnectionString    string `env:"DB_CONN,required"`          // Postgres 数据库的连接字符串
		RedisConnectionString string `env:"REDIS_CONN,required"`       // Redis 数据库的连接字符串
	}
}
