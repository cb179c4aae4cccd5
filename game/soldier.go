package game

import "gridshooter/engine"

var (
	soldierWalking = []engine.TextureID{
		engine.TextureSoldierWalking1,
		engine.TextureSoldierWalking2,
		engine.TextureSoldierWalking3,
		engine.TextureSoldierWalking4,
	}

	soldierShooting = []engine.TextureID{
		engine.TextureSoldierShooting1,
		engine.TextureSoldierShooting2,
	}

	soldierPain = []engine.TextureID{engine.TextureSoldierPain}

	soldierDying = []engine.TextureID{
		engine.TextureSoldierDead1,
		engine.TextureSoldierDead2,
		engine.TextureSoldierDead3,
		engine.TextureSoldierDead4,
		engine.TextureSoldierDead5,
		engine.TextureSoldierDead6,
		engine.TextureSoldierDead7,
		engine.TextureSoldierDead8,
	}
)

var (
	weaponShooting = []engine.TextureID{engine.TextureWeaponShoot, engine.TextureWeaponReload1}

	weaponReloading = []engine.TextureID{
		engine.TextureWeaponReload2,
		engine.TextureWeaponReload3,
		engine.TextureWeaponReload4,
	}
)
